package marketing

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// KlaviyoClient sends track/identify calls to Klaviyo's legacy public API.
// Every call is best-effort: failures are logged and reported as false, never
// returned as errors, because marketing is always a side channel to the
// primary action.
type KlaviyoClient struct {
	BaseURL string
	client  *http.Client
	now     func() time.Time
}

// Profile carries the customer-facing identity fields of an event.
type Profile struct {
	Email     string
	Phone     string
	FirstName string
}

// NewKlaviyoClient returns a client against the public Klaviyo endpoints.
func NewKlaviyoClient() *KlaviyoClient {
	return &KlaviyoClient{
		BaseURL: "https://a.klaviyo.com",
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

// NormalizePhone converts a free-form phone into "+<countrycode><digits>".
// 10 digits are assumed US/Canada, 11 digits starting with 1 get a bare plus,
// anything longer than 5 digits is taken as already-international. Shorter
// inputs normalize to "" and are omitted from payloads.
func NormalizePhone(phone string) string {
	var digits []byte
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	d := string(digits)
	switch {
	case len(d) == 10:
		return "+1" + d
	case len(d) == 11 && d[0] == '1':
		return "+" + d
	case len(d) > 5:
		return "+" + d
	}
	return ""
}

// TrackEvent records an event against a profile. Returns false when the site
// id is missing or the call fails for any reason.
func (k *KlaviyoClient) TrackEvent(siteID, eventName string, profile Profile, properties map[string]interface{}) bool {
	if siteID == "" {
		log.Println("klaviyo: site id missing, skipping track event")
		return false
	}

	props := map[string]interface{}{
		"$event_id": fmt.Sprintf("%s_%d", eventName, k.now().UnixMilli()),
	}
	for key, v := range properties {
		props[key] = v
	}

	payload := map[string]interface{}{
		"token":               siteID,
		"event":               eventName,
		"customer_properties": customerProperties(profile),
		"properties":          props,
		"time":                k.now().Unix(),
	}
	return k.send("/api/track", payload)
}

// Identify upserts a profile without an event. Same encoding as TrackEvent
// against the identify endpoint.
func (k *KlaviyoClient) Identify(siteID string, profile Profile) bool {
	if siteID == "" {
		log.Println("klaviyo: site id missing, skipping identify")
		return false
	}
	payload := map[string]interface{}{
		"token":      siteID,
		"properties": customerProperties(profile),
	}
	return k.send("/api/identify", payload)
}

func customerProperties(p Profile) map[string]interface{} {
	out := map[string]interface{}{}
	if p.Email != "" {
		out["$email"] = p.Email
	}
	if normalized := NormalizePhone(p.Phone); normalized != "" {
		out["$phone_number"] = normalized
	}
	if p.FirstName != "" {
		out["$first_name"] = p.FirstName
	}
	return out
}

// send encodes the envelope as base64 JSON in the data query parameter and
// issues a GET. The response body is ignored beyond the status code.
func (k *KlaviyoClient) send(path string, payload map[string]interface{}) bool {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Println("klaviyo: marshal failed:", err)
		return false
	}
	encoded := base64.StdEncoding.EncodeToString(jsonData)

	reqURL := fmt.Sprintf("%s%s?data=%s", k.BaseURL, path, url.QueryEscape(encoded))
	resp, err := k.client.Get(reqURL)
	if err != nil {
		log.Println("klaviyo: request failed:", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Println("klaviyo: unexpected status:", resp.Status)
		return false
	}
	return true
}
