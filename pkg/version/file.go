/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package version

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var manifestVersionField = regexp.MustCompile(`"version"\s*:\s*"([^"]*)"`)

// Load reads the version stored in the given file. Manifest files
// (*.json) carry it in a "version" field, flat files hold nothing but
// the version string itself.
func Load(path string) (Version, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Version{}, fmt.Errorf(errCannotReadVersionFile, path, err)
	}
	var raw string
	if isManifest(path) {
		raw, err = manifestVersion(path, content)
		if err != nil {
			return Version{}, err
		}
	} else {
		raw = strings.TrimSpace(string(content))
	}
	return Parse(raw)
}

// Store writes ver into the given file. For a manifest only the value
// bytes of the "version" field are replaced, every other byte of the
// file is left as is, and the original content is kept next to it in a
// *.bak file. A flat file is overwritten with the bare version string.
func Store(path string, ver Version) error {
	if !isManifest(path) {
		if err := os.WriteFile(path, []byte(ver.String()), versionFileMode); err != nil {
			return fmt.Errorf(errCannotSaveVersionFile, path, err)
		}
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(errCannotReadVersionFile, path, err)
	}
	if _, err := manifestVersion(path, content); err != nil {
		return err
	}

	loc := manifestVersionField.FindSubmatchIndex(content)
	patched := make([]byte, 0, len(content)+len(ver.String()))
	patched = append(patched, content[:loc[2]]...)
	patched = append(patched, ver.String()...)
	patched = append(patched, content[loc[3]:]...)

	if err := os.WriteFile(path+backupExt, content, versionFileMode); err != nil {
		return fmt.Errorf(errCannotSaveVersionFile, path+backupExt, err)
	}
	if err := os.WriteFile(path, patched, versionFileMode); err != nil {
		return fmt.Errorf(errCannotSaveVersionFile, path, err)
	}
	return nil
}

// BumpFile loads the version from the file, increments it and stores
// the result. Nothing is written when the stored version does not
// parse.
func BumpFile(path string) (old Version, bumped Version, err error) {
	old, err = Load(path)
	if err != nil {
		return Version{}, Version{}, err
	}
	bumped = old.Bump()
	if err = Store(path, bumped); err != nil {
		return Version{}, Version{}, err
	}
	return old, bumped, nil
}

// manifestVersion validates the manifest and extracts the raw value of
// its "version" field.
func manifestVersion(path string, content []byte) (string, error) {
	var manifest map[string]interface{}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return "", fmt.Errorf(errInvalidManifest, path, ErrInvalidManifest)
	}
	if _, ok := manifest["version"].(string); !ok {
		return "", fmt.Errorf(errInvalidManifest, path, ErrVersionKeyMissing)
	}
	switch matches := manifestVersionField.FindAllSubmatchIndex(content, -1); len(matches) {
	case 1:
		return string(content[matches[0][2]:matches[0][3]]), nil
	case 0:
		// the field exists but is written in a form the in-place
		// replacement cannot handle, e.g. with escaped characters
		return "", fmt.Errorf(errInvalidManifest, path, ErrVersionKeyMissing)
	default:
		return "", fmt.Errorf(errInvalidManifest, path, ErrVersionKeyAmbiguous)
	}
}

func isManifest(path string) bool {
	return strings.EqualFold(filepath.Ext(path), manifestExt)
}
