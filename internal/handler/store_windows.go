//go:build windows

package handler

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

// Access rights needed to both enumerate values and delete subkeys on the
// same handle during unregistration.
const enumerateAndDeleteAccess = registry.READ | registry.SET_VALUE

// Register associates the scheme with this executable under
// HKCU\SOFTWARE\Classes and stores the launch command line under the hermes
// configuration key. Re-registering a scheme overwrites the same values.
func Register(scheme string, commandline []string, extraArgs string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}

	openCommand := OpenCommand(exePath, extraArgs)
	iconValue := IconValue(exePath)

	protocolPath := ProtocolKeyPath(scheme)
	class, _, err := registry.CreateKey(registry.CURRENT_USER, protocolPath, registry.WRITE)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", protocolPath, err)
	}
	defer class.Close()

	if err := class.SetStringValue("", DisplayName(scheme)); err != nil {
		return fmt.Errorf("failed to set display name on %s: %w", protocolPath, err)
	}

	// The empty "URL Protocol" value is what marks this class as a protocol handler.
	if err := class.SetStringValue("URL Protocol", ""); err != nil {
		return fmt.Errorf("failed to set URL Protocol marker on %s: %w", protocolPath, err)
	}

	icon, _, err := registry.CreateKey(class, "DefaultIcon", registry.WRITE)
	if err != nil {
		return fmt.Errorf("failed to create DefaultIcon key: %w", err)
	}
	defer icon.Close()

	if err := icon.SetStringValue("", iconValue); err != nil {
		return fmt.Errorf("failed to set DefaultIcon value: %w", err)
	}

	log.Debug().Str("key", protocolPath+`\DefaultIcon`).Str("value", iconValue).Msg("set icon")

	open, _, err := registry.CreateKey(class, `shell\open\command`, registry.WRITE)
	if err != nil {
		return fmt.Errorf("failed to create shell open command key: %w", err)
	}
	defer open.Close()

	if err := open.SetStringValue("", openCommand); err != nil {
		return fmt.Errorf("failed to set shell open command: %w", err)
	}

	log.Debug().Str("key", protocolPath+`\shell\open\command`).Str("value", openCommand).Msg("set open command")

	log.Info().Str("scheme", scheme).Msg("registering command")
	configPath := ConfigKeyPath(scheme)
	config, _, err := registry.CreateKey(registry.CURRENT_USER, configPath, registry.WRITE)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", configPath, err)
	}
	defer config.Close()

	if err := config.SetStringsValue("command", commandline); err != nil {
		return fmt.Errorf("failed to store launch command under %s: %w", configPath, err)
	}

	log.Debug().Str("key", configPath).Strs("command", commandline).Msg("stored launch command")

	return nil
}

// Command returns the launch command line stored for a scheme.
func Command(scheme string) ([]string, error) {
	config, err := registry.OpenKey(registry.CURRENT_USER, ConfigKeyPath(scheme), registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("%s://: %w", scheme, ErrNotRegistered)
		}
		return nil, fmt.Errorf("failed to open configuration for %s://: %w", scheme, err)
	}
	defer config.Close()

	command, _, err := config.GetStringsValue("command")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("%s://: %w", scheme, ErrNotRegistered)
		}
		return nil, fmt.Errorf("failed to read launch command for %s://: %w", scheme, err)
	}

	return command, nil
}

// Unregister removes both registry trees set up for a scheme. Keys that do
// not exist are not an error.
func Unregister(scheme string) error {
	protocolPath := ProtocolKeyPath(scheme)
	log.Trace().Str("key", protocolPath).Msg("querying protocol registration")
	if err := deleteTree(registry.CURRENT_USER, protocolPath); err != nil {
		log.Warn().Str("key", protocolPath).Err(err).Msg("unable to delete protocol registration")
	} else {
		log.Info().Str("scheme", scheme).Msg("removed protocol registration")
	}

	configPath := ConfigKeyPath(scheme)
	log.Trace().Str("key", configPath).Msg("querying configuration")
	if err := deleteTree(registry.CURRENT_USER, configPath); err != nil {
		log.Warn().Str("key", configPath).Err(err).Msg("unable to delete configuration")
	} else {
		log.Info().Str("scheme", scheme).Msg("removed configuration")
	}

	return nil
}

// List enumerates every scheme with a stored configuration.
func List() ([]Registration, error) {
	root, err := registry.OpenKey(registry.CURRENT_USER, configRootKeyPath, registry.READ)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", configRootKeyPath, err)
	}
	defer root.Close()

	names, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", configRootKeyPath, err)
	}

	var registrations []Registration
	for _, name := range names {
		command, err := Command(name)
		if err != nil {
			log.Warn().Str("scheme", name).Err(err).Msg("skipping unreadable registration")
			continue
		}
		registrations = append(registrations, Registration{Scheme: name, Command: command})
	}

	return registrations, nil
}

// deleteTree removes a key and all of its subkeys. A missing key is a no-op.
func deleteTree(root registry.Key, path string) error {
	k, err := registry.OpenKey(root, path, enumerateAndDeleteAccess)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			log.Trace().Str("key", path).Msg("key does not exist, nothing to delete")
			return nil
		}
		return err
	}

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		k.Close()
		return err
	}

	for _, name := range names {
		if err := deleteTree(k, name); err != nil {
			k.Close()
			return err
		}
	}
	k.Close()

	return registry.DeleteKey(root, path)
}
