package sys

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// --- Duration Parsing ---

var durationTokenRe = regexp.MustCompile(`(\d+)\s*([smhd])`)

var durationUnits = map[string]int{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

var ErrInvalidDuration = errors.New("invalid time format")

// ParseDuration parses compact duration strings like 10m, 2h, 1d, 45s, or
// combos like 1h30m, 2d4h, "1h 30m". All tokens sum, duplicate units included
// (10m5m is 15 minutes). Returns total seconds.
func ParseDuration(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidDuration
	}

	parts := durationTokenRe.FindAllStringSubmatch(s, -1)
	if len(parts) == 0 {
		return 0, ErrInvalidDuration
	}

	total := 0
	for _, p := range parts {
		amt, err := strconv.Atoi(p[1])
		if err != nil {
			return 0, ErrInvalidDuration
		}
		total += amt * durationUnits[p[2]]
	}

	if total <= 0 {
		return 0, ErrInvalidDuration
	}
	return total, nil
}

// --- Language Code Resolution ---

var langAliases = map[string]string{
	// ISO codes
	"en": "en", "eng": "en", "english": "en",
	"es": "es", "spa": "es", "spanish": "es", "español": "es",
	"fr": "fr", "fra": "fr", "fre": "fr", "french": "fr",
	"de": "de", "ger": "de", "deu": "de", "german": "de",
	"it": "it", "ita": "it", "italian": "it",
	"pt": "pt", "por": "pt", "portuguese": "pt",
	"pt-br": "pt", "br": "pt",
	"ru": "ru", "rus": "ru", "russian": "ru",
	"zh": "zh-cn", "zh-cn": "zh-cn", "chinese": "zh-cn", "mandarin": "zh-cn",
	"zh-tw": "zh-tw", "traditional chinese": "zh-tw",
	"ja": "ja", "jpn": "ja", "japanese": "ja",
	"ko": "ko", "kor": "ko", "korean": "ko",
	"ar": "ar", "ara": "ar", "arabic": "ar",
	"hi": "hi", "hin": "hi", "hindi": "hi",
	"id": "id", "ind": "id", "indonesian": "id", "bahasa": "id",
	"ms": "ms", "msa": "ms", "malay": "ms",
	"tl": "tl", "fil": "tl", "tagalog": "tl", "filipino": "tl",
	"vi": "vi", "vie": "vi", "vietnamese": "vi",
	"th": "th", "tha": "th", "thai": "th",
	"tr": "tr", "tur": "tr", "turkish": "tr",
	"nl": "nl", "dut": "nl", "nld": "nl", "dutch": "nl",
	"sv": "sv", "swe": "sv", "swedish": "sv",
	"no": "no", "nor": "no", "norsk": "no", "nb": "no", "nn": "no", "norwegian": "no",
	"da": "da", "dan": "da", "danish": "da",
	"pl": "pl", "pol": "pl", "polish": "pl",
	"uk": "uk", "ukr": "uk", "ukrainian": "uk",
	"cs": "cs", "cze": "cs", "ces": "cs", "czech": "cs",
	"el": "el", "greek": "el",
	"he": "he", "iw": "he", "heb": "he", "hebrew": "he",
	"fa": "fa", "per": "fa", "fas": "fa", "farsi": "fa", "persian": "fa",
	"bg": "bg", "bul": "bg", "bulgarian": "bg",
	"ro": "ro", "rum": "ro", "ron": "ro", "romanian": "ro",
	"hu": "hu", "hun": "hu", "hungarian": "hu",
	"fi": "fi", "fin": "fi", "finnish": "fi",
	"et": "et", "est": "et", "estonian": "et",
	"lt": "lt", "lit": "lt", "lithuanian": "lt",
	"lv": "lv", "lav": "lv", "latvian": "lv",
	"sr": "sr", "srp": "sr", "serbian": "sr",
	"sk": "sk", "slk": "sk", "slovak": "sk",
	"sl": "sl", "slv": "sl", "slovenian": "sl",
	"hr": "hr", "hrv": "hr", "croatian": "hr",
	"ga": "ga", "gle": "ga", "irish": "ga",
	"is": "is", "ice": "is", "isl": "is", "icelandic": "is",
	"af": "af", "afr": "af", "afrikaans": "af",
	"sw": "sw", "swa": "sw", "swahili": "sw",
	"am": "am", "amh": "am", "amharic": "am",
	"ur": "ur", "urd": "ur", "urdu": "ur",
	"bn": "bn", "ben": "bn", "bengali": "bn",
	"ta": "ta", "tam": "ta", "tamil": "ta",
	"te": "te", "tel": "te", "telugu": "te",
	"mr": "mr", "mar": "mr", "marathi": "mr",
	"gu": "gu", "guj": "gu", "gujarati": "gu",
	"pa": "pa", "pan": "pa", "punjabi": "pa",
}

// ResolveLangCode maps a free-form language name or alias to the canonical
// code the translator expects. Unknown input passes through trimmed and
// lowercased so the downstream service can reject it.
func ResolveLangCode(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if code, ok := langAliases[key]; ok {
		return code
	}
	return key
}

// --- Argument Splitting ---

// SplitArgs splits command input on whitespace, honoring double-quoted
// segments so poll questions can contain spaces.
func SplitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n'):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
