package dto

import (
	"encoding/json"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Publisher keys are domains or platform-scoped channel IDs such as
// "youtube#channel:UC123".
var publisherKeyRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.:#@]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("publisher_key", validatePublisherKey)
	}
}

func validatePublisherKey(fl validator.FieldLevel) bool {
	return ValidPublisherKey(fl.Field().String())
}

// ValidPublisherKey reports whether s is an acceptable publisher key.
func ValidPublisherKey(s string) bool {
	return s != "" && len(s) <= 256 && publisherKeyRe.MatchString(s)
}

// PublisherKeyOf extracts the publisher_key string from a raw banner
// payload. ok is false when the payload has no string key there; the
// banner parser reports those cases itself.
func PublisherKeyOf(payload []byte) (key string, ok bool) {
	var doc struct {
		PublisherKey *string `json:"publisher_key"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil || doc.PublisherKey == nil {
		return "", false
	}
	return *doc.PublisherKey, true
}
