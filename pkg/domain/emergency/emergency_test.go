package emergency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/domain/emergency"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

func directory() *emergency.Directory {
	return emergency.NewDirectory(config.EmergencyConfig{
		Region:          "IN",
		EmergencyNumber: "112",
		HelplineNumber:  "9152987821",
		PsychiatristURL: "https://www.practo.com/",
	})
}

func level(l emotion.RiskLevel) *emotion.RiskLevel { return &l }

func TestPromptFor_NoEscalation(t *testing.T) {
	d := directory()
	assert.Nil(t, d.PromptFor(nil))
	assert.Nil(t, d.PromptFor(level(emotion.RiskLow)))
}

func TestPromptFor_HighShowsHelplineOnly(t *testing.T) {
	p := directory().PromptFor(level(emotion.RiskHigh))

	require.NotNil(t, p)
	assert.Equal(t, "You deserve support", p.Title)
	require.Len(t, p.Contacts, 1)
	assert.Equal(t, emergency.ContactHelpline, p.Contacts[0].Kind)
	assert.Equal(t, "tel:9152987821", p.Contacts[0].URI)
	assert.Equal(t, "Stay in App", p.DismissLabel)
}

func TestPromptFor_CriticalShowsAllContacts(t *testing.T) {
	p := directory().PromptFor(level(emotion.RiskCritical))

	require.NotNil(t, p)
	assert.Equal(t, "Immediate Action Recommended", p.Title)
	require.Len(t, p.Contacts, 3)
	assert.Equal(t, "tel:112", p.Contacts[0].URI)
	assert.Equal(t, "Call Emergency (112)", p.Contacts[0].Label)
	assert.Equal(t, "tel:9152987821", p.Contacts[1].URI)
	assert.Equal(t, "https://www.practo.com/", p.Contacts[2].URI)
	assert.Equal(t, "Continue", p.DismissLabel)
}

func TestPromptFor_CriticalSkipsUnconfiguredFinder(t *testing.T) {
	d := emergency.NewDirectory(config.EmergencyConfig{EmergencyNumber: "911", HelplineNumber: "988"})
	p := d.PromptFor(level(emotion.RiskCritical))

	require.NotNil(t, p)
	assert.Len(t, p.Contacts, 2)
}
