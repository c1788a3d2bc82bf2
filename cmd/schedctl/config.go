/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hivesched/hivesched/pkg/history"
	"github.com/hivesched/hivesched/pkg/hiveauth"
	"github.com/hivesched/hivesched/pkg/profiles"
)

func resolveConfigDir() (string, error) {
	dir := configDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf(errNoConfigDir, err)
		}
		dir = filepath.Join(base, configDirName)
	}
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf(errNoConfigDir, err)
	}
	return dir, nil
}

func configFilePath(name string) (string, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func openSession() (*hiveauth.Session, error) {
	path, err := configFilePath(sessionFileName)
	if err != nil {
		return nil, err
	}
	session := hiveauth.New(path)
	session.SetPool(region, clientID)
	if err := session.Load(); err != nil {
		return nil, err
	}
	return session, nil
}

func openProfiles() (*profiles.Store, error) {
	path, err := configFilePath(profilesFileName)
	if err != nil {
		return nil, err
	}
	return profiles.New(path), nil
}

func openHistory() (*history.Store, error) {
	path, err := configFilePath(historyFileName)
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}
