// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory
const AppName = "pii-mask"

// GetConfigDir returns the pii-mask configuration directory.
// PII_MASK_CONFIG_DIR overrides the platform default.
func GetConfigDir() string {
	if dir := os.Getenv("PII_MASK_CONFIG_DIR"); dir != "" {
		return dir
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// GetConfigFile returns the path to the per-user config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}
