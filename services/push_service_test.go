package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformArnRoutesPerPlatform(t *testing.T) {
	p := &PushService{fcmPlatformArn: "arn:fcm", apnsPlatformArn: "arn:apns"}

	arn, err := p.platformArn("android")
	assert.NoError(t, err)
	assert.Equal(t, "arn:fcm", arn)

	arn, err = p.platformArn("iOS")
	assert.NoError(t, err)
	assert.Equal(t, "arn:apns", arn)

	_, err = p.platformArn("web")
	assert.Error(t, err)
}

func TestPlatformArnRequiresConfiguredApplication(t *testing.T) {
	p := &PushService{}

	_, err := p.platformArn("android")
	assert.Error(t, err)
	_, err = p.platformArn("ios")
	assert.Error(t, err)
}

func TestTokenHashStable(t *testing.T) {
	p := &PushService{}

	assert.Equal(t, p.tokenHash("device-token"), p.tokenHash("device-token"))
	assert.NotEqual(t, p.tokenHash("device-token"), p.tokenHash("other-token"))
	assert.Len(t, p.tokenHash("device-token"), 64) // hex sha256
}

func TestPushMessageCarriesBothProtocols(t *testing.T) {
	raw, err := pushMessage("Vita.AI", "Meta diária atingida", map[string]string{"type": "info"})
	assert.NoError(t, err)

	var envelope map[string]string
	assert.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "Meta diária atingida", envelope["default"])

	var gcm struct {
		Notification map[string]string `json:"notification"`
	}
	assert.NoError(t, json.Unmarshal([]byte(envelope["GCM"]), &gcm))
	assert.Equal(t, "Vita.AI", gcm.Notification["title"])

	var apns struct {
		Aps struct {
			Alert map[string]string `json:"alert"`
		} `json:"aps"`
	}
	assert.NoError(t, json.Unmarshal([]byte(envelope["APNS"]), &apns))
	assert.Equal(t, "Meta diária atingida", apns.Aps.Alert["body"])
}
