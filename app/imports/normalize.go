package imports

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/shopspring/decimal"
)

// excelEpoch is day zero of the spreadsheet date serial scheme.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialDateMin: serials at or below this are treated as plain numbers,
// not dates (25569 is 1970-01-01).
const serialDateMin = 25569

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

var truthyWords = map[string]bool{
	"yes":     true,
	"true":    true,
	"1":       true,
	"y":       true,
	"active":  true,
	"enabled": true,
}

// ParseDecimal reads a money-ish cell value. Currency symbols, thousands
// separators and whitespace are stripped before parsing. Anything that
// still fails to parse comes back as zero, never an error.
func ParseDecimal(raw string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseBool accepts native booleans, numbers (truthiness) and the usual
// spreadsheet words for "on".
func ParseBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "" {
			return false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f != 0
		}
		return truthyWords[s]
	default:
		return false
	}
}

// ParseDate handles both spreadsheet date serials and textual dates.
// Unparseable input yields nil rather than an error.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f > serialDateMin {
			d := excelEpoch.Add(time.Duration(f * float64(24*time.Hour)))
			return &d
		}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseOptions reads a set-like attribute column (sizes, colors,
// materials). Well-formed JSON is taken verbatim; anything else is split
// on commas with each token doubling as its own display label.
func ParseOptions(raw string) models.OptionList {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		if opts, ok := optionsFromJSON(s); ok {
			return opts
		}
	}
	var opts models.OptionList
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		opts = append(opts, models.Option{Value: token, Label: token})
	}
	return opts
}

func optionsFromJSON(s string) (models.OptionList, bool) {
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err == nil {
		opts := make(models.OptionList, 0, len(list))
		for _, v := range list {
			opts = append(opts, models.Option{Value: v, Label: v})
		}
		return opts, true
	}
	var pairs map[string]interface{}
	if err := json.Unmarshal([]byte(s), &pairs); err == nil {
		keys := make([]string, 0, len(pairs))
		for k := range pairs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		opts := make(models.OptionList, 0, len(keys))
		for _, k := range keys {
			opts = append(opts, models.Option{Value: k, Label: fmt.Sprint(pairs[k])})
		}
		return opts, true
	}
	return nil, false
}

// ParseVariations decodes the attr1:v1,v2|attr2:v3,v4 convention.
// Groups without a colon are skipped silently.
func ParseVariations(raw string) models.VariationList {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	var variations models.VariationList
	for _, group := range strings.Split(s, "|") {
		parts := strings.SplitN(group, ":", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		var values []string
		for _, v := range strings.Split(parts[1], ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
		variations = append(variations, models.Variation{Name: name, Values: values})
	}
	return variations
}

// ExtractMetadata pulls every meta_ / metadata_ prefixed column into a
// flat map with the prefix stripped.
func ExtractMetadata(row Row) models.MetaMap {
	meta := models.MetaMap{}
	for key, value := range row {
		stripped := ""
		switch {
		case strings.HasPrefix(key, "metadata_"):
			stripped = strings.TrimPrefix(key, "metadata_")
		case strings.HasPrefix(key, "meta_"):
			stripped = strings.TrimPrefix(key, "meta_")
		default:
			continue
		}
		if stripped == "" {
			continue
		}
		meta[stripped] = value
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

// ParseURLList splits a comma-separated list of URLs, dropping empties.
func ParseURLList(raw string) []string {
	var urls []string
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
