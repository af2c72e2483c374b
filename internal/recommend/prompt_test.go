package recommend

import (
	"strings"
	"testing"
)

func TestComposePrompt(t *testing.T) {
	prefs := "big battery"
	got := ComposePrompt("es", &prefs, "need a phone", "Acme X1 ($999)")

	for _, want := range []string{
		"Available products in our database:\nAcme X1 ($999)\n",
		"User preferences: big battery\n",
		"User message: need a phone\n",
		"1. Be concise and friendly",
		"camera quality, battery life",
		"3. Only recommend products from the database above",
		"ask 1-2 specific questions",
		"5. Keep responses under 100 words",
		"6. Respond in es\n",
		"Current conversation: need a phone",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestComposePromptDefaults(t *testing.T) {
	empty := ""
	for _, prefs := range []*string{nil, &empty} {
		got := ComposePrompt("", prefs, "hi", "")
		if !strings.Contains(got, "User preferences: None specified\n") {
			t.Errorf("missing preferences placeholder:\n%s", got)
		}
		if !strings.Contains(got, "6. Respond in English\n") {
			t.Errorf("missing default language:\n%s", got)
		}
	}
}

func TestComposePromptTreatsInputsAsText(t *testing.T) {
	msg := "{{.Secret}} %s %!d(MISSING) ${HOME}"
	got := ComposePrompt("en", nil, msg, "")
	if strings.Count(got, msg) != 2 {
		t.Fatalf("message not embedded verbatim twice:\n%s", got)
	}
}
