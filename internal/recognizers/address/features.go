// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"regexp"
	"strings"
)

// Prefectures lists the 47 prefectures in their canonical order
var Prefectures = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

// Keywords are words that commonly occur inside an address
var Keywords = []string{
	"市", "区", "町", "村", "郡", "丁目", "番地", "号",
	"マンション", "アパート", "団地", "住宅", "荘", "ハイツ", "コーポ",
	"ビル", "タワー", "コート", "号室", "室", "階",
}

// Triggers introduce an address in running text
var Triggers = []string{
	"住所", "自宅", "所在地",
	"住所は", "住所：", "住所:",
	"自宅は", "自宅：", "自宅:",
	"所在地は", "所在地：", "所在地:",
}

var (
	// 3丁目, 5番地, 二条, 港区
	numberMarkerRegex = regexp.MustCompile(`[0-9０-９一二三四五六七八九十]+(?:丁目|番地|号|番|条|町目|区|市)`)

	// 1-2-3
	blockLotRegex = regexp.MustCompile(`[0-9０-９]{1,3}[-－][0-9０-９]{1,3}[-－][0-9０-９]{1,3}`)

	// Whole-match shapes that are numbers rather than addresses, in priority
	// order: bare postal code, date, 11-12 digit number, phone number
	numericShapes = []*regexp.Regexp{
		regexp.MustCompile(`^\p{Nd}{3}-\p{Nd}{4}$`),
		regexp.MustCompile(`^\p{Nd}{4}年\p{Nd}{1,2}月\p{Nd}{1,2}日$`),
		regexp.MustCompile(`^\p{Nd}{11,12}$`),
		regexp.MustCompile(`^\p{Nd}{2,4}-\p{Nd}{2,4}-\p{Nd}{4}$`),
	}
)

// hasAddressFeatures reports whether s contains a prefecture, an address
// keyword, a numbered block marker or a 1-2-3 style block/lot number
func hasAddressFeatures(s string, keywords []string) bool {
	for _, p := range Prefectures {
		if strings.Contains(s, p) {
			return true
		}
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return numberMarkerRegex.MatchString(s) || blockLotRegex.MatchString(s)
}

// HasAddressFeatures applies the built-in keyword list
func HasAddressFeatures(s string) bool {
	return hasAddressFeatures(s, Keywords)
}

// isNumericShape reports whether s is exactly a postal code, date,
// 11-12 digit number or phone number
func isNumericShape(s string) bool {
	for _, re := range numericShapes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// prefectureAlternation returns the prefectures joined for use in a regex
func prefectureAlternation() string {
	quoted := make([]string, len(Prefectures))
	for i, p := range Prefectures {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(quoted, "|")
}
