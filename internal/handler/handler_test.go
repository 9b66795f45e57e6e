package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPaths(t *testing.T) {
	assert.Equal(t, `SOFTWARE\Classes\hermes`, ProtocolKeyPath("hermes"))
	assert.Equal(t, `Software\bitSpatter\Hermes\Protocols\hermes`, ConfigKeyPath("hermes"))
}

func TestOpenCommand(t *testing.T) {
	exe := `C:\Tools\hermes_urls.exe`

	assert.Equal(t, `"C:\Tools\hermes_urls.exe" open "%1"`, OpenCommand(exe, ""))
	assert.Equal(t, `"C:\Tools\hermes_urls.exe" --debug open "%1"`, OpenCommand(exe, "--debug"))
}

func TestIconValue(t *testing.T) {
	assert.Equal(t, `"C:\Tools\hermes_urls.exe",0`, IconValue(`C:\Tools\hermes_urls.exe`))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "URL:hermes Protocol", DisplayName("hermes"))
}

func TestRegistrationString(t *testing.T) {
	r := Registration{Scheme: "hermes", Command: []string{"UnrealEditor.exe", "MyProject.uproject", "-hermes=%1"}}
	assert.Equal(t, "hermes:// -> UnrealEditor.exe MyProject.uproject -hermes=%1", r.String())
}
