// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import "pii-mask/internal/detector"

// EntityInfo describes an entity type for listings
type EntityInfo struct {
	Type        string `json:"entity_type" yaml:"entity_type"`
	Description string `json:"description" yaml:"description"`
}

// SupportedEntities lists the entity types the standard recognizers produce
func SupportedEntities() []EntityInfo {
	return []EntityInfo{
		{Type: detector.EntityPerson, Description: "人名"},
		{Type: detector.EntityPhone, Description: "電話番号"},
		{Type: detector.EntityEmail, Description: "メールアドレス"},
		{Type: detector.EntityAddress, Description: "住所"},
		{Type: detector.EntityBirth, Description: "生年月日"},
		{Type: detector.EntityMyNumber, Description: "マイナンバー（個人番号）"},
	}
}
