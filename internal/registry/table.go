package registry

// Curated provider tag table. Tags are LANG-COUNTRY where LANG is an ISO
// 639-1 (or provider-specific) language code and COUNTRY is an ISO 3166-1
// alpha-2 country code. The detected column is the ISO 639-3 code emitted
// for the host's language detector; an empty value means the detector has
// no category for that language and its voices are excluded from the
// catalog.
var curated = []Entry{
	{"af-ZA", "Afrikaans (South Africa)", "afr"},
	{"ar-XA", "Arabic", "ara"},
	{"bn-IN", "Bengali (India)", "ben"},
	{"bg-BG", "Bulgarian (Bulgaria)", "bul"},
	{"ca-ES", "Catalan (Spain)", "cat"},
	{"yue-HK", "Chinese (Hong Kong)", "cmn"},
	{"cs-CZ", "Czech (Czech Republic)", "ces"},
	{"da-DK", "Danish (Denmark)", "dan"},
	{"nl-BE", "Dutch (Belgium)", "nld"},
	{"nl-NL", "Dutch (Netherlands)", "nld"},
	{"en-AU", "English (Australia)", "eng"},
	{"en-IN", "English (India)", "eng"},
	{"en-GB", "English (UK)", "eng"},
	{"en-US", "English (US)", "eng"},
	{"fil-PH", "Filipino (Philippines)", ""},
	{"fi-FI", "Finnish (Finland)", "fin"},
	{"fr-CA", "French (Canada)", "fra"},
	{"fr-FR", "French (France)", "fra"},
	{"de-DE", "German (Germany)", "deu"},
	{"el-GR", "Greek (Greece)", "ell"},
	{"gu-IN", "Gujarati (India)", "guj"},
	{"hi-IN", "Hindi (India)", "hin"},
	{"hu-HU", "Hungarian (Hungary)", "hun"},
	{"is-IS", "Icelandic (Iceland)", ""},
	{"id-ID", "Indonesian (Indonesia)", "ind"},
	{"it-IT", "Italian (Italy)", "ita"},
	{"ja-JP", "Japanese (Japan)", "jpn"},
	{"kn-IN", "Kannada (India)", "kan"},
	{"ko-KR", "Korean (South Korea)", "kor"},
	{"lv-LV", "Latvian (Latvia)", "lav"},
	{"ms-MY", "Malay (Malaysia)", ""},
	{"ml-IN", "Malayalam (India)", "mal"},
	{"mr-IN", "Marathi (India)", "mar"},
	{"cmn-CN", "Mandarin Chinese (China)", "cmn"},
	{"cmn-TW", "Mandarin Chinese (Taiwan, Province of China)", "cmn"},
	{"nb-NO", "Norwegian (Norway)", ""},
	{"pl-PL", "Polish (Poland)", "pol"},
	{"pt-BR", "Portuguese (Brazil)", "por"},
	{"pt-PT", "Portuguese (Portugal)", "por"},
	{"pa-IN", "Punjabi (India)", "pan"},
	{"ro-RO", "Romanian (Romania)", "ron"},
	{"ru-RU", "Russian (Russia)", "rus"},
	{"sr-RS", "Serbian (Serbia)", "srp"},
	{"sk-SK", "Slovak (Slovakia)", "slk"},
	{"es-ES", "Spanish (Spain)", "spa"},
	{"es-US", "Spanish (US)", "spa"},
	{"sv-SE", "Swedish (Sweden)", "swe"},
	{"ta-IN", "Tamil (India)", "tam"},
	{"te-IN", "Telugu (India)", "tel"},
	{"th-TH", "Thai (Thailand)", "tha"},
	{"tr-TR", "Turkish (Turkey)", "tur"},
	{"uk-UA", "Ukrainian (Ukraine)", "ukr"},
	{"vi-VN", "Vietnamese (Vietnam)", "vie"},
}

var defaultRegistry = New(curated)

// Default returns the curated provider tag registry.
func Default() *Registry {
	return defaultRegistry
}
