package marketing

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"4091234567", "+14091234567"},
		{"14091234567", "+14091234567"},
		{"409-123-4567", "+14091234567"},
		{"(409) 123-4567", "+14091234567"},
		{"+44 20 7946 0958", "+442079460958"},
		{"123", ""},
		{"", ""},
	}
	for _, tt := range cases {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrackEventEnvelope(t *testing.T) {
	var gotPath string
	var envelope map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, err := base64.StdEncoding.DecodeString(r.URL.Query().Get("data"))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &envelope))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	k := NewKlaviyoClient()
	k.BaseURL = srv.URL
	fixed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	k.now = func() time.Time { return fixed }

	ok := k.TrackEvent("SITE123", "Checked In", Profile{
		Email:     "jane@example.com",
		Phone:     "409-123-4567",
		FirstName: "Jane",
	}, map[string]interface{}{"device": "iPhone 13"})

	require.True(t, ok)
	require.Equal(t, "/api/track", gotPath)
	require.Equal(t, "SITE123", envelope["token"])
	require.Equal(t, "Checked In", envelope["event"])
	require.EqualValues(t, fixed.Unix(), envelope["time"])

	cp := envelope["customer_properties"].(map[string]interface{})
	require.Equal(t, "jane@example.com", cp["$email"])
	require.Equal(t, "+14091234567", cp["$phone_number"])
	require.Equal(t, "Jane", cp["$first_name"])

	props := envelope["properties"].(map[string]interface{})
	require.Equal(t, "iPhone 13", props["device"])
	require.Equal(t, fmt.Sprintf("Checked In_%d", fixed.UnixMilli()), props["$event_id"])
}

func TestTrackEventShortPhoneOmitted(t *testing.T) {
	var envelope map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := base64.StdEncoding.DecodeString(r.URL.Query().Get("data"))
		_ = json.Unmarshal(raw, &envelope)
	}))
	defer srv.Close()

	k := NewKlaviyoClient()
	k.BaseURL = srv.URL

	require.True(t, k.TrackEvent("SITE123", "Checked In", Profile{Phone: "123"}, nil))
	cp := envelope["customer_properties"].(map[string]interface{})
	_, present := cp["$phone_number"]
	require.False(t, present, "short phone must be omitted from the payload")
}

func TestTrackEventMissingSiteID(t *testing.T) {
	k := NewKlaviyoClient()
	require.False(t, k.TrackEvent("", "Checked In", Profile{}, nil))
	require.False(t, k.Identify("", Profile{}))
}

func TestSendSwallowsNetworkErrors(t *testing.T) {
	k := NewKlaviyoClient()
	k.BaseURL = "http://127.0.0.1:1" // nothing listens here
	require.False(t, k.TrackEvent("SITE123", "Checked In", Profile{}, nil))
}

func TestIdentifyEnvelope(t *testing.T) {
	var gotPath string
	var envelope map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := base64.StdEncoding.DecodeString(r.URL.Query().Get("data"))
		_ = json.Unmarshal(raw, &envelope)
	}))
	defer srv.Close()

	k := NewKlaviyoClient()
	k.BaseURL = srv.URL

	require.True(t, k.Identify("SITE123", Profile{Email: "j@x.com", Phone: "4091234567"}))
	require.Equal(t, "/api/identify", gotPath)
	require.Equal(t, "SITE123", envelope["token"])
	_, hasEvent := envelope["event"]
	require.False(t, hasEvent, "identify carries no event name")
}
