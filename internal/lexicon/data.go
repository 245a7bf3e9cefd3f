package lexicon

import "regexp"

// sttErrorPatterns is the ordered STT error-substitution table. Order is
// load-bearing: the bare "സെക്സ്" correction runs before the longer phrases
// that contain it, so those longer entries only catch text the short form
// did not already rewrite.
var sttErrorPatterns = []ErrorPattern{
	// Misheard "check" (the single most common Malayalam STT confusion).
	{Name: "check", Literal: "സെക്സ്", Replace: "ചെക്ക്"},
	{Name: "check_video", Literal: "സെക്സ് വീഡിയോ", Replace: "ചെക്ക് ചെയ്യാൻ"},
	{Name: "check_router", Literal: "സെക്സ് റൗട്ടർ", Replace: "റൗട്ടർ ചെക്ക്"},
	{Name: "check_round", Literal: "സെക്സ് റൗണ്ട്", Replace: "ചെക്ക് ചെയ്യാൻ"},

	// Word variants with chillu/zero-width differences.
	{Name: "recharge_gem", Literal: "റീചാർജ്ജ്", Replace: "റീചാർജ്"},
	{Name: "signal_chillu", Literal: "സിഗ്നല്‍", Replace: "സിഗ്നൽ"},
	{Name: "channel_chillu", Literal: "ചാനല്‍", Replace: "ചാനൽ"},
	{Name: "connection_chillu", Literal: "കണക്ഷന്‍", Replace: "കണക്ഷൻ"},

	// Homophones.
	{Name: "red", Literal: "റെഡി", Replace: "റെഡ്"},
	{Name: "network_split", Literal: "നേറ്റ് വർക്ക്", Replace: "നെറ്റ്‌വർക്ക്"},

	// Device names.
	{Name: "modem_typo", Literal: "മോടം", Replace: "മോഡം"},
	{Name: "router_typo", Literal: "റൗടർ", Replace: "റൗട്ടർ"},

	// TV terms.
	{Name: "dish_light", Literal: "എലൈറ്റ്", Replace: "ഡിഷ് ലൈറ്റ്"},
	{Name: "channel_confused", Literal: "ചന്ദ്രിക", Replace: "ചാനൽ"},

	// Verb-form normalization.
	{Name: "check_intent", Literal: "ചെക്ക് ചെയ്യാം", Replace: "ചെക്ക് ചെയ്യാൻ"},
	{Name: "check_past", Literal: "ചെക്ക് ചെയ്ത്", Replace: "ചെക്ക് ചെയ്ത"},
	{Name: "set_intent", Literal: "സെറ്റ് ചെയ്യാം", Replace: "സെറ്റ് ചെയ്യാൻ"},
	{Name: "setup_intent", Literal: "സെറ്റപ്പ് ചെയ്യാം", Replace: "സെറ്റപ്പ് ചെയ്യാൻ"},

	// More word variants.
	{Name: "connection_n", Literal: "കണക്ഷന്", Replace: "കണക്ഷൻ"},
	{Name: "connections", Literal: "കണക്ഷൻസ്", Replace: "കണക്ഷൻ"},
	{Name: "recharge_u", Literal: "റീചാർജു", Replace: "റീചാർജ്"},
	{Name: "recharge_intent", Literal: "റീചാർജ് ചെയ്യാം", Replace: "റീചാർജ് ചെയ്യാൻ"},
	{Name: "recharge_past", Literal: "റീചാർജ് ചെയ്ത്", Replace: "റീചാർജ് ചെയ്ത"},
	{Name: "restart_u", Literal: "റീസ്റ്റാർട്ടു", Replace: "റീസ്റ്റാർട്ട്"},
	{Name: "restart_intent", Literal: "റീസ്റ്റാർട്ട് ചെയ്യാം", Replace: "റീസ്റ്റാർട്ട് ചെയ്യാൻ"},
	{Name: "restart_past", Literal: "റീസ്റ്റാർട്ട് ചെയ്ത്", Replace: "റീസ്റ്റാർട്ട് ചെയ്ത"},

	// Device name variants.
	{Name: "modem_e", Literal: "മോഡെം", Replace: "മോഡം"},
	{Name: "modem_ee", Literal: "മോഡേം", Replace: "മോഡം"},
	{Name: "router_au", Literal: "റൌട്ടർ", Replace: "റൗട്ടർ"},
	{Name: "router_au2", Literal: "റൌടർ", Replace: "റൗട്ടർ"},
	{Name: "router_au3", Literal: "റൌട്ടര്", Replace: "റൗട്ടർ"},
	{Name: "wifi_y", Literal: "വൈഫൈയ്", Replace: "വൈഫൈ"},
	{Name: "wifi_yi", Literal: "വൈഫൈയി", Replace: "വൈഫൈ"},
	{Name: "wifi_ya", Literal: "വൈഫൈയ", Replace: "വൈഫൈ"},

	// TV/dish variants.
	{Name: "dishtv_joined", Literal: "ഡിഷ്ടിവി", Replace: "ഡിഷ് ടിവി"},
	{Name: "dishtv_long", Literal: "ഡിഷ് ടീവീ", Replace: "ഡിഷ് ടിവി"},
	{Name: "settop_joined", Literal: "സെറ്റ്ടോപ്", Replace: "സെറ്റ് ടോപ്"},
	{Name: "settop_pp", Literal: "സെറ്റ് ടോപ്പ് ബോക്സ്", Replace: "സെറ്റ് ടോപ് ബോക്സ്"},
	{Name: "channel_cannot_see", Literal: "ചാനൽ കാണാൻ കഴിയുന്നില്ല", Replace: "ചാനൽ കാണുന്നില്ല"},

	// Internet issue phrasings.
	{Name: "net_down", Literal: "നെറ്റ് വരുന്നില്ല", Replace: "ഇന്റർനെറ്റ് വരുന്നില്ല"},
	{Name: "net_no_conn", Literal: "നെറ്റ് കണക്ഷൻ ഇല്ല", Replace: "ഇന്റർനെറ്റ് കണക്ഷൻ ഇല്ല"},
	{Name: "net_slow", Literal: "നെറ്റ് സ്ലോ ആണ്", Replace: "ഇന്റർനെറ്റ് സ്ലോ ആണ്"},
	{Name: "net_slow_vega", Literal: "നെറ്റ് വേഗത കുറവാണ്", Replace: "ഇന്റർനെറ്റ് വേഗത കുറവാണ്"},
	{Name: "net_slow_speed", Literal: "നെറ്റ് സ്പീഡ് കുറവാണ്", Replace: "ഇന്റർനെറ്റ് സ്പീഡ് കുറവാണ്"},
	{Name: "wifi_not_working", Literal: "വൈഫൈ വർക്ക് ചെയ്യുന്നില്ല", Replace: "വൈഫൈ പ്രവർത്തിക്കുന്നില്ല"},
	{Name: "wifi_not_working_a", Literal: "വൈഫൈ വർക്ക് ചെയ്യുന്നില്ലാ", Replace: "വൈഫൈ പ്രവർത്തിക്കുന്നില്ല"},
	{Name: "wifi_not_working_e", Literal: "വൈഫൈ വർക്ക് ചെയ്യുന്നില്ലെ", Replace: "വൈഫൈ പ്രവർത്തിക്കുന്നില്ല"},

	// Pronunciation variants.
	{Name: "wifi_v1", Literal: "വൈഫയി", Replace: "വൈഫൈ"},
	{Name: "wifi_v2", Literal: "വൈഫായി", Replace: "വൈഫൈ"},
	{Name: "wifi_v3", Literal: "വൈഫയ്", Replace: "വൈഫൈ"},
	{Name: "wifi_v4", Literal: "വൈഫാ", Replace: "വൈഫൈ"},
	{Name: "internet_u", Literal: "ഇന്റർനെറ്റു", Replace: "ഇന്റർനെറ്റ്"},
	{Name: "internet_zwj", Literal: "ഇന്റർനെറ്റ്‌", Replace: "ഇന്റർനെറ്റ്"},
	{Name: "internet_trunc", Literal: "ഇന്റർനെറ്", Replace: "ഇന്റർനെറ്റ്"},
	{Name: "internet_trunc2", Literal: "ഇന്റർനെറ", Replace: "ഇന്റർനെറ്റ്"},

	// Negative verb-form variants.
	{Name: "kaanunnilla_a", Literal: "കാണുന്നില്ലാ", Replace: "കാണുന്നില്ല"},
	{Name: "kaanunnilla_e", Literal: "കാണുന്നില്ലെ", Replace: "കാണുന്നില്ല"},
	{Name: "kittunnilla_a", Literal: "കിട്ടുന്നില്ലാ", Replace: "കിട്ടുന്നില്ല"},
	{Name: "kittunnilla_e", Literal: "കിട്ടുന്നില്ലെ", Replace: "കിട്ടുന്നില്ല"},
	{Name: "varunnilla_a", Literal: "വരുന്നില്ലാ", Replace: "വരുന്നില്ല"},
	{Name: "varunnilla_e", Literal: "വരുന്നില്ലെ", Replace: "വരുന്നില്ല"},
	{Name: "pravarthikk_a", Literal: "പ്രവർത്തിക്കുന്നില്ലാ", Replace: "പ്രവർത്തിക്കുന്നില്ല"},
	{Name: "pravarthikk_e", Literal: "പ്രവർത്തിക്കുന്നില്ലെ", Replace: "പ്രവർത്തിക്കുന്നില്ല"},
}

// domainNGrams are multi-word domain phrase corrections. Identity entries are
// deliberate: they mark the span canonical so later single-token stages leave
// it alone. Sorted longest-first at load.
var domainNGrams = []NGram{
	// Connection issues.
	{"നെറ്റ് വരുന്നില്ല", "ഇന്റർനെറ്റ് വരുന്നില്ല"},
	{"നെറ്റ് കിട്ടുന്നില്ല", "ഇന്റർനെറ്റ് കിട്ടുന്നില്ല"},
	{"ഇന്റർനെറ്റ് വരുന്നില്ല", "ഇന്റർനെറ്റ് വരുന്നില്ല"},
	{"ഇന്റർനെറ്റ് കിട്ടുന്നില്ല", "ഇന്റർനെറ്റ് കിട്ടുന്നില്ല"},
	{"ഇന്റർനെറ്റ് ഇല്ല", "ഇന്റർനെറ്റ് ഇല്ല"},
	{"ഇന്റർനെറ്റ് കണക്ഷൻ ഇല്ല", "ഇന്റർനെറ്റ് കണക്ഷൻ ഇല്ല"},
	{"നെറ്റ് കണക്ഷൻ ഇല്ല", "ഇന്റർനെറ്റ് കണക്ഷൻ ഇല്ല"},
	{"ഇന്റർനെറ്റ് ഡിസ്കണക്റ്റ് ആകുന്നു", "ഇന്റർനെറ്റ് ഡിസ്കണക്റ്റ് ആകുന്നു"},
	{"ഇന്റർനെറ്റ് ഇടയ്ക്കിടെ പോകുന്നു", "ഇന്റർനെറ്റ് ഇടയ്ക്കിടെ പോകുന്നു"},
	{"ഇന്റർനെറ്റ് ഇടയ്ക്ക് പോകുന്നു", "ഇന്റർനെറ്റ് ഇടയ്ക്കിടെ പോകുന്നു"},
	{"ഇന്റർനെറ്റ് കണക്റ്റ് ആകുന്നില്ല", "ഇന്റർനെറ്റ് കണക്റ്റ് ആകുന്നില്ല"},
	{"നെറ്റ് കണക്റ്റ് ആകുന്നില്ല", "ഇന്റർനെറ്റ് കണക്റ്റ് ആകുന്നില്ല"},

	// Speed issues.
	{"നെറ്റ് സ്ലോ", "ഇന്റർനെറ്റ് സ്ലോ ആണ്"},
	{"ഇന്റർനെറ്റ് സ്ലോ", "ഇന്റർനെറ്റ് സ്ലോ ആണ്"},
	{"നെറ്റ് വേഗത കുറവാണ്", "ഇന്റർനെറ്റ് വേഗത കുറവാണ്"},
	{"ഇന്റർനെറ്റ് വേഗത കുറവാണ്", "ഇന്റർനെറ്റ് വേഗത കുറവാണ്"},
	{"നെറ്റ് സ്പീഡ് കുറവാണ്", "ഇന്റർനെറ്റ് സ്പീഡ് കുറവാണ്"},
	{"ഇന്റർനെറ്റ് സ്പീഡ് കുറവാണ്", "ഇന്റർനെറ്റ് സ്പീഡ് കുറവാണ്"},
	{"ഇന്റർനെറ്റ് വളരെ സ്ലോ ആണ്", "ഇന്റർനെറ്റ് വളരെ സ്ലോ ആണ്"},
	{"ഇന്റർനെറ്റ് വളരെ മന്ദഗതിയിൽ ആണ്", "ഇന്റർനെറ്റ് വളരെ മന്ദഗതിയിൽ ആണ്"},
	{"സ്പീഡ് കുറവ്", "സ്പീഡ് കുറവാണ്"},

	// WiFi issues.
	{"വൈഫൈ വർക്ക് ചെയ്യുന്നില്ല", "വൈഫൈ പ്രവർത്തിക്കുന്നില്ല"},
	{"വൈഫൈ വരുന്നില്ല", "വൈഫൈ പ്രവർത്തിക്കുന്നില്ല"},
	{"വൈഫൈ കണക്ഷൻ ഇല്ല", "വൈഫൈ കണക്ഷൻ ഇല്ല"},
	{"വൈഫൈ സ്ലോ", "വൈഫൈ സ്ലോ ആണ്"},
	{"വൈഫൈ സിഗ്നൽ ദുർബലമാണ്", "വൈഫൈ സിഗ്നൽ ദുർബലമാണ്"},
	{"വൈഫൈ സിഗ്നൽ വീക് ആണ്", "വൈഫൈ സിഗ്നൽ ദുർബലമാണ്"},
	{"വൈഫൈ സിഗ്നൽ ഇല്ല", "വൈഫൈ സിഗ്നൽ ഇല്ല"},
	{"വൈഫൈ പാസ്‌വേഡ് മാറ്റണം", "വൈഫൈ പാസ്‌വേഡ് മാറ്റണം"},
	{"വൈഫൈ പാസ്‌വേഡ് മറന്നു", "വൈഫൈ പാസ്‌വേഡ് മറന്നു"},
	{"വൈഫൈ പാസ്‌വേഡ് അറിയില്ല", "വൈഫൈ പാസ്‌വേഡ് അറിയില്ല"},
	{"വൈഫൈ കണക്റ്റ് ചെയ്യാൻ കഴിയുന്നില്ല", "വൈഫൈ കണക്റ്റ് ചെയ്യാൻ കഴിയുന്നില്ല"},
	{"വൈഫൈ കണക്റ്റ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല", "വൈഫൈ കണക്റ്റ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല"},
	{"വൈഫൈ നെറ്റ്‌വർക്ക് കാണുന്നില്ല", "വൈഫൈ നെറ്റ്‌വർക്ക് കാണുന്നില്ല"},

	// Router and modem issues.
	{"റൗട്ടർ പ്രശ്നം", "റൗട്ടർ പ്രശ്നം"},
	{"റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്യണം", "റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്യണം"},
	{"റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്തു", "റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്തു"},
	{"റൗട്ടർ ഓൺ ആകുന്നില്ല", "റൗട്ടർ ഓൺ ആകുന്നില്ല"},
	{"റൗട്ടർ ഓഫ് ആയി", "റൗട്ടർ ഓഫ് ആയി"},
	{"റൗട്ടർ റെഡ് ലൈറ്റ് കാണിക്കുന്നു", "റൗട്ടർ റെഡ് ലൈറ്റ് കാണിക്കുന്നു"},
	{"റൗട്ടർ ലൈറ്റ് ഓഫ് ആണ്", "റൗട്ടർ ലൈറ്റ് ഓഫ് ആണ്"},
	{"മോഡം വർക്ക് ചെയ്യുന്നില്ല", "മോഡം പ്രവർത്തിക്കുന്നില്ല"},
	{"മോഡം റീസ്റ്റർട്ട്", "മോഡം റീസ്റ്റാർട്ട്"},
	{"റീസ്റ്റർട്ട്", "റീസ്റ്റാർട്ട്"},
	{"മോഡം റീസ്റ്റാർട്ട് ചെയ്യണം", "മോഡം റീസ്റ്റാർട്ട് ചെയ്യണം"},
	{"മോഡം റീസ്റ്റാർട്ട് ചെയ്തു", "മോഡം റീസ്റ്റാർട്ട് ചെയ്തു"},
	{"മോഡം ഓൺ ആകുന്നില്ല", "മോഡം ഓൺ ആകുന്നില്ല"},
	{"മോഡം ഓഫ് ആയി", "മോഡം ഓഫ് ആയി"},

	// Data and billing.
	{"ഡാറ്റ തീർന്നു", "ഡാറ്റ തീർന്നു"},
	{"ഡാറ്റ കഴിഞ്ഞു", "ഡാറ്റ തീർന്നു"},
	{"ഡാറ്റ ബാലൻസ് തീർന്നു", "ഡാറ്റ ബാലൻസ് തീർന്നു"},
	{"ഡാറ്റ ലിമിറ്റ് കഴിഞ്ഞു", "ഡാറ്റ ലിമിറ്റ് കഴിഞ്ഞു"},
	{"ഡാറ്റ ഉപയോഗം അറിയണം", "ഡാറ്റ ഉപയോഗം അറിയണം"},
	{"ഡാറ്റ ബാലൻസ് ചെക്ക് ചെയ്യണം", "ഡാറ്റ ബാലൻസ് ചെക്ക് ചെയ്യണം"},
	{"ഡാറ്റ ബാലൻസ് എത്രയുണ്ട്", "ഡാറ്റ ബാലൻസ് എത്രയുണ്ട്"},
	{"റീചാർജ് ചെയ്യണം", "റീചാർജ് ചെയ്യണം"},
	{"റീചാർജ് ചെയ്തു", "റീചാർജ് ചെയ്തു"},
	{"റീചാർജ് ചെയ്തിട്ടും നെറ്റ് വരുന്നില്ല", "റീചാർജ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല"},
	{"റീചാർജ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല", "റീചാർജ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല"},
	{"ബിൽ അടച്ചു", "ബിൽ അടച്ചു"},
	{"ബിൽ അടച്ചിട്ടും കണക്ഷൻ കട്ട് ചെയ്തു", "ബിൽ അടച്ചിട്ടും കണക്ഷൻ കട്ട് ചെയ്തു"},

	// Error messages.
	{"നെറ്റ് എറർ", "ഇന്റർനെറ്റ് എറർ"},
	{"ഡിഎൻഎസ് എറർ", "ഡിഎൻഎസ് എറർ"},
	{"ഇന്റർനെറ്റ് കണക്ഷൻ എറർ", "ഇന്റർനെറ്റ് കണക്ഷൻ എറർ"},
	{"ഇന്റർനെറ്റ് കണക്ഷൻ ലിമിറ്റഡ്", "ഇന്റർനെറ്റ് കണക്ഷൻ പരിമിതമാണ്"},
	{"ഇന്റർനെറ്റ് കണക്ഷൻ പരിമിതമാണ്", "ഇന്റർനെറ്റ് കണക്ഷൻ പരിമിതമാണ്"},
	{"ഇന്റർനെറ്റ് കണക്ഷൻ അൺസെക്യൂർ", "ഇന്റർനെറ്റ് കണക്ഷൻ അൺസെക്യൂർ ആണ്"},

	// Usage and performance.
	{"ഇന്റർനെറ്റ് സ്പീഡ് ടെസ്റ്റ്", "ഇന്റർനെറ്റ് സ്പീഡ് ടെസ്റ്റ്"},
	{"ഇന്റർനെറ്റ് ബ്രൗസ് ചെയ്യാൻ കഴിയുന്നില്ല", "ഇന്റർനെറ്റ് ബ്രൗസ് ചെയ്യാൻ കഴിയുന്നില്ല"},
	{"ഇന്റർനെറ്റ് പേജുകൾ ലോഡ് ആകുന്നില്ല", "ഇന്റർനെറ്റ് പേജുകൾ ലോഡ് ആകുന്നില്ല"},
	{"പേജ് ലോഡ് ആകുന്നില്ല", "പേജ് ലോഡ് ആകുന്നില്ല"},
	{"സിഗ്നൽ പോയി", "സിഗ്നൽ ഇല്ല"},
	{"സിഗ്നൽ വീക്", "സിഗ്നൽ ദുർബലമാണ്"},
	{"ഡൗൺലോഡ് സ്പീഡ് കുറവാണ്", "ഡൗൺലോഡ് സ്പീഡ് കുറവാണ്"},
	{"അപ്‌ലോഡ് സ്പീഡ് കുറവാണ്", "അപ്‌ലോഡ് സ്പീഡ് കുറവാണ്"},
	{"ബഫറിങ് ഉണ്ട്", "ബഫറിങ് ഉണ്ട്"},
}

// technicalTerms maps term variants to one canonical form per term. Identity
// entries mark the canonical spelling itself so it is never touched again.
var technicalTerms = map[string]string{
	// Network equipment.
	"റൗട്ടർ": "റൗട്ടർ", "റൌട്ടർ": "റൗട്ടർ", "റൌടർ": "റൗട്ടർ", "റൗടർ": "റൗട്ടർ",
	"മോഡം": "മോഡം", "മോടം": "മോഡം", "മോഡെം": "മോഡം", "മോഡേം": "മോഡം",

	// Connection types.
	"വൈഫൈ": "വൈഫൈ", "വൈഫൈയ്": "വൈഫൈ", "വൈഫൈയി": "വൈഫൈ", "വൈഫയി": "വൈഫൈ",
	"വൈഫായി": "വൈഫൈ", "വൈഫയ്": "വൈഫൈ", "വൈഫാ": "വൈഫൈ",
	"ഇന്റർനെറ്റ്": "ഇന്റർനെറ്റ്", "ഇന്റർനെറ്റു": "ഇന്റർനെറ്റ്",
	"ഇന്റർനെറ്റ്‌": "ഇന്റർനെറ്റ്", "ഇന്റർനെറ്": "ഇന്റർനെറ്റ്", "ഇന്റർനെറ": "ഇന്റർനെറ്റ്",
	"നെറ്റ്":        "ഇന്റർനെറ്റ്",
	"ബ്രോഡ്ബാൻഡ്": "ബ്രോഡ്ബാൻഡ്",
	"ഫൈബർ":         "ഫൈബർ",

	// Connection statuses.
	"കണക്ഷൻ": "കണക്ഷൻ", "കണക്ഷന്‍": "കണക്ഷൻ", "കണക്ഷന്": "കണക്ഷൻ", "കണക്ഷൻസ്": "കണക്ഷൻ",
	"കണക്റ്റ്": "കണക്റ്റ്",
	"ഡിസ്കണക്റ്റ്": "ഡിസ്കണക്റ്റ്", "ഡിസ്‌കണക്റ്റ്": "ഡിസ്കണക്റ്റ്",
	"റീകണക്റ്റ്": "റീകണക്റ്റ്",

	// Network quality.
	"സിഗ്നൽ": "സിഗ്നൽ", "സിഗ്നല്‍": "സിഗ്നൽ",
	"സ്പീഡ്": "സ്പീഡ്", "സ്ലോ": "സ്ലോ", "വേഗത": "വേഗത",

	// Actions.
	"റീസ്റ്റാർട്ട്": "റീസ്റ്റാർട്ട്", "റീസ്റ്റർട്ട്": "റീസ്റ്റാർട്ട്",
	"റീചാർജ്": "റീചാർജ്", "റീചാർജ്ജ്": "റീചാർജ്", "റീചാർജു": "റീചാർജ്",

	// Status and error terms.
	"എറർ": "എറർ", "പ്രശ്നം": "പ്രശ്നം", "തകരാർ": "തകരാർ",
	"ബഫറിങ്": "ബഫറിങ്", "ബഫറിങ്ങ്": "ബഫറിങ്",

	// Data and billing.
	"ഡാറ്റ": "ഡാറ്റ",
	"പേയ്മെന്റ്": "പേയ്മെന്റ്", "പേമെന്റ്": "പേയ്മെന്റ്",
	"ബിൽ": "ബിൽ", "ബില്ല്": "ബിൽ",

	// Settings.
	"പാസ്‌വേഡ്": "പാസ്‌വേഡ്", "പാസ്വേഡ്": "പാസ്‌വേഡ്",
	"ഐപി":       "ഐപി",
	"ഡിഎൻഎസ്": "ഡിഎൻഎസ്",

	// Network related.
	"നെറ്റ്‌വർക്ക്": "നെറ്റ്‌വർക്ക്",
	"ഹോട്ട്സ്പോട്ട്": "ഹോട്ട്സ്പോട്ട്", "ഹോട്സ്പോട്ട്": "ഹോട്ട്സ്പോട്ട്",

	// Performance metrics.
	"ഡൗൺലോഡ്": "ഡൗൺലോഡ്", "അപ്‌ലോഡ്": "അപ്‌ലോഡ്",
	"പിങ്": "പിങ്", "ലാറ്റൻസി": "ലാറ്റൻസി",
	"ബാൻഡ്‌വിഡ്ത്": "ബാൻഡ്‌വിഡ്ത്",
}

// englishLoanwords maps English loanwords (lowercase) to their Malayalam
// renderings for code-switch normalization.
var englishLoanwords = map[string]string{
	// Core internet terms.
	"wifi": "വൈഫൈ", "router": "റൗട്ടർ", "modem": "മോഡം",
	"internet": "ഇന്റർനെറ്റ്", "speed": "സ്പീഡ്", "signal": "സിഗ്നൽ",
	"data": "ഡാറ്റ", "gb": "ജിബി", "mb": "എംബി", "kb": "കെബി",
	"connect": "കണക്റ്റ്", "connection": "കണക്ഷൻ",
	"restart": "റീസ്റ്റാർട്ട്", "recharge": "റീചാർജ്",
	"network": "നെറ്റ്‌വർക്ക്", "slow": "സ്ലോ", "fast": "ഫാസ്റ്റ്",
	"problem": "പ്രശ്നം", "issue": "പ്രശ്നം", "error": "എറർ",

	// Technical specifications.
	"password": "പാസ്‌വേഡ്", "username": "യൂസർനെയിം",
	"download": "ഡൗൺലോഡ്", "upload": "അപ്‌ലോഡ്", "server": "സെർവർ",
	"ping": "പിങ്", "latency": "ലാറ്റൻസി", "bandwidth": "ബാൻഡ്‌വിഡ്ത്",
	"fiber": "ഫൈബർ", "broadband": "ബ്രോഡ്ബാൻഡ്", "hotspot": "ഹോട്ട്സ്പോട്ട്",
	"wireless": "വയർലെസ്", "wired": "വയർഡ്", "lan": "ലാൻ",
	"ip": "ഐപി", "dns": "ഡിഎൻഎസ്", "reset": "റീസെറ്റ്",

	// Billing and account.
	"bill": "ബിൽ", "payment": "പേയ്മെന്റ്", "balance": "ബാലൻസ്",
	"plan": "പ്ലാൻ", "package": "പാക്കേജ്",

	// Status indicators.
	"online": "ഓൺലൈൻ", "offline": "ഓഫ്‌ലൈൻ", "on": "ഓൺ", "off": "ഓഫ്",
	"power": "പവർ", "green": "പച്ച", "yellow": "മഞ്ഞ", "red": "ചുവപ്പ്", "blue": "നീല",

	// Connection issues.
	"buffer": "ബഫർ", "buffering": "ബഫറിങ്", "freeze": "ഫ്രീസ്",
	"hang": "ഹാങ്", "crash": "ക്രാഷ്", "weak": "വീക്", "strong": "സ്ട്രോങ്",
	"disconnect": "ഡിസ്കണക്റ്റ്", "reconnect": "റീകണക്റ്റ്",
	"check": "ചെക്ക്", "test": "ടെസ്റ്റ്", "speed test": "സ്പീഡ് ടെസ്റ്റ്",

	// Payment methods.
	"upi": "യുപിഐ", "net banking": "നെറ്റ് ബാങ്കിങ്",
	"credit card": "ക്രെഡിറ്റ് കാർഡ്", "debit card": "ഡെബിറ്റ് കാർഡ്",
	"wallet": "വാലറ്റ്", "pay": "പേ", "paid": "പെയ്ഡ്",

	// Account status.
	"limit": "ലിമിറ്റ്", "unlimited": "അൺലിമിറ്റഡ്", "limited": "ലിമിറ്റഡ്",
	"expired": "എക്സ്‌പയേർഡ്", "active": "ആക്റ്റീവ്", "inactive": "ഇനാക്റ്റീവ്",
	"suspended": "സസ്പെൻഡഡ്", "terminated": "ടെർമിനേറ്റഡ്",

	// Common actions.
	"cancel": "കാൻസൽ", "renew": "റിന്യൂ", "upgrade": "അപ്‌ഗ്രേഡ്", "downgrade": "ഡൗൺഗ്രേഡ്",
}

// romanizedMalayalam maps romanized (Latin-script) Malayalam words and
// phrases to Malayalam script. Multi-word keys matched greedily before
// single words.
var romanizedMalayalam = map[string]string{
	// Internet status expressions.
	"net varunnilla":      "ഇന്റർനെറ്റ് വരുന്നില്ല",
	"net illa":            "ഇന്റർനെറ്റ് ഇല്ല",
	"internet varunnilla": "ഇന്റർനെറ്റ് വരുന്നില്ല",
	"internet illa":       "ഇന്റർനെറ്റ് ഇല്ല",
	"net slow aanu":       "ഇന്റർനെറ്റ് സ്ലോ ആണ്",
	"internet slow aanu":  "ഇന്റർനെറ്റ് സ്ലോ ആണ്",
	"speed kuravanu":      "സ്പീഡ് കുറവാണ്",
	"vegatha kuravanu":    "വേഗത കുറവാണ്",

	// WiFi related.
	"wifi varunnilla":         "വൈഫൈ വരുന്നില്ല",
	"wifi illa":               "വൈഫൈ ഇല്ല",
	"wifi signal illa":        "വൈഫൈ സിഗ്നൽ ഇല്ല",
	"wifi connect cheyyunnilla": "വൈഫൈ കണക്റ്റ് ചെയ്യുന്നില്ല",
	"wifi password marannu":   "വൈഫൈ പാസ്‌വേഡ് മറന്നു",
	"wifi password ariyilla":  "വൈഫൈ പാസ്‌വേഡ് അറിയില്ല",
	"wifi slow aanu":          "വൈഫൈ സ്ലോ ആണ്",

	// Router and modem.
	"router prasnam":        "റൗട്ടർ പ്രശ്നം",
	"router restart cheyyam": "റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്യാം",
	"router restart cheythu": "റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്തു",
	"router off aayi":       "റൗട്ടർ ഓഫ് ആയി",
	"router on aavunnilla":  "റൗട്ടർ ഓൺ ആകുന്നില്ല",
	"router red light":      "റൗട്ടർ റെഡ് ലൈറ്റ്",
	"modem prasnam":         "മോഡം പ്രശ്നം",
	"modem restart cheyyam": "മോഡം റീസ്റ്റാർട്ട് ചെയ്യാം",
	"modem restart cheythu": "മോഡം റീസ്റ്റാർട്ട് ചെയ്തു",
	"modem off aayi":        "മോഡം ഓഫ് ആയി",
	"modem on aavunnilla":   "മോഡം ഓൺ ആകുന്നില്ല",

	// Connection issues.
	"connection illa":      "കണക്ഷൻ ഇല്ല",
	"connection prasnam":   "കണക്ഷൻ പ്രശ്നം",
	"signal illa":          "സിഗ്നൽ ഇല്ല",
	"signal weak aanu":     "സിഗ്നൽ ദുർബലമാണ്",
	"disconnect aayi":      "ഡിസ്കണക്റ്റ് ആയി",
	"connect cheyyunnilla": "കണക്റ്റ് ചെയ്യുന്നില്ല",

	// Data and payment.
	"data theernnu":           "ഡാറ്റ തീർന്നു",
	"data balance ethrayundu": "ഡാറ്റ ബാലൻസ് എത്രയുണ്ട്",
	"recharge cheyyam":        "റീചാർജ് ചെയ്യാം",
	"recharge cheythu":        "റീചാർജ് ചെയ്തു",
	"bill adachu":             "ബിൽ അടച്ചു",
	"payment cheythu":         "പേയ്മെന്റ് ചെയ്തു",

	// Error and troubleshooting.
	"error undu":      "എറർ ഉണ്ട്",
	"prasnam undu":    "പ്രശ്നമുണ്ട്",
	"restart cheyyam": "റീസ്റ്റാർട്ട് ചെയ്യാം",
	"restart cheythu": "റീസ്റ്റാർട്ട് ചെയ്തു",
	"check cheyyam":   "ചെക്ക് ചെയ്യാം",
	"check cheythu":   "ചെക്ക് ചെയ്തു",
	"test cheyyam":    "ടെസ്റ്റ് ചെയ്യാം",
	"test cheythu":    "ടെസ്റ്റ് ചെയ്തു",

	// Common verbs and status words.
	"varunnilla":    "വരുന്നില്ല",
	"illa":          "ഇല്ല",
	"undu":          "ഉണ്ട്",
	"aanu":          "ആണ്",
	"cheyyunnilla":  "ചെയ്യുന്നില്ല",
	"cheythu":       "ചെയ്തു",
	"cheyyam":       "ചെയ്യാം",
	"kuravanu":      "കുറവാണ്",
	"slow aanu":     "സ്ലോ ആണ്",
	"prasnam":       "പ്രശ്നം",
	"thakraru":      "തകരാർ",

	// Pronouns, places, reporting verbs.
	"njan":    "ഞാൻ",
	"ente":    "എന്റെ",
	"veetil":  "വീട്ടിൽ",
	"ennu":    "എന്ന്",
	"paranju": "പറഞ്ഞു",

	// Question forms.
	"enthu cheyyam":  "എന്ത് ചെയ്യാം",
	"engane cheyyam": "എങ്ങനെ ചെയ്യാം",
	"enthinu":        "എന്തിന്",
	"ethra":          "എത്ര",
	"eppozhanu":      "എപ്പോഴാണ്",
	"evideyanu":      "എവിടെയാണ്",

	// Technical terms.
	"wifi": "വൈഫൈ", "router": "റൗട്ടർ", "modem": "മോഡം",
	"internet": "ഇന്റർനെറ്റ്", "net": "ഇന്റർനെറ്റ്", "speed": "സ്പീഡ്",
	"connection": "കണക്ഷൻ", "signal": "സിഗ്നൽ", "data": "ഡാറ്റ",
	"recharge": "റീചാർജ്", "bill": "ബിൽ", "password": "പാസ്‌വേഡ്",
	"download": "ഡൗൺലോഡ്", "upload": "അപ്‌ലോഡ്", "fiber": "ഫൈബർ",
	"broadband": "ബ്രോഡ്ബാൻഡ്", "hotspot": "ഹോട്ട്സ്പോട്ട്", "buffering": "ബഫറിങ്",

	// Common expressions.
	"net work cheyyunnilla":                     "ഇന്റർനെറ്റ് പ്രവർത്തിക്കുന്നില്ല",
	"internet work cheyyunnilla":                "ഇന്റർനെറ്റ് പ്രവർത്തിക്കുന്നില്ല",
	"wifi work cheyyunnilla":                    "വൈഫൈ പ്രവർത്തിക്കുന്നില്ല",
	"router work cheyyunnilla":                  "റൗട്ടർ പ്രവർത്തിക്കുന്നില്ല",
	"modem work cheyyunnilla":                   "മോഡം പ്രവർത്തിക്കുന്നില്ല",
	"recharge cheythittum net varunnilla":       "റീചാർജ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല",
	"bill adachittum connection cut cheythu":    "ബിൽ അടച്ചിട്ടും കണക്ഷൻ കട്ട് ചെയ്തു",
	"wifi connect cheythittum internet varunnilla": "വൈഫൈ കണക്റ്റ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല",
	"speed test cheyyam":                        "സ്പീഡ് ടെസ്റ്റ് ചെയ്യാം",
	"page load aavunnilla":                      "പേജ് ലോഡ് ആകുന്നില്ല",
}

// commonPhrases is the fuzzy-correction corpus with relative frequencies.
var commonPhrases = []Phrase{
	{"ഇന്റർനെറ്റ് വരുന്നില്ല", 120},
	{"ഇന്റർനെറ്റ് ഇല്ല", 95},
	{"ഇന്റർനെറ്റ് സ്ലോ ആണ്", 90},
	{"വൈഫൈ പ്രവർത്തിക്കുന്നില്ല", 85},
	{"ഇന്റർനെറ്റ് കണക്ഷൻ ഇല്ല", 70},
	{"റൗട്ടർ റെഡ് ലൈറ്റ് കാണിക്കുന്നു", 60},
	{"സ്പീഡ് കുറവാണ്", 58},
	{"റൗട്ടർ റീസ്റ്റാർട്ട് ചെയ്തു", 55},
	{"സിഗ്നൽ ഇല്ല", 50},
	{"റീചാർജ് ചെയ്തിട്ടും ഇന്റർനെറ്റ് വരുന്നില്ല", 44},
	{"വൈഫൈ പാസ്‌വേഡ് മറന്നു", 40},
	{"മോഡം പ്രവർത്തിക്കുന്നില്ല", 38},
	{"ചാനൽ കാണുന്നില്ല", 35},
	{"ഡാറ്റ തീർന്നു", 30},
	{"ബിൽ അടച്ചു", 28},
	{"ഇന്റർനെറ്റ് ഇടയ്ക്കിടെ പോകുന്നു", 26},
	{"പേജ് ലോഡ് ആകുന്നില്ല", 22},
	{"വൈഫൈ സിഗ്നൽ ദുർബലമാണ്", 20},
	{"കണക്ഷൻ പോയി", 18},
	{"സെറ്റ് ടോപ് ബോക്സ് പ്രവർത്തിക്കുന്നില്ല", 12},
}

// silenceDenylist lists tokens that whisper-style STT engines emit for
// silence or background noise on Malayalam telephone audio.
var silenceDenylist = []string{"സെക്സ്", "sex"}

// contentDenylist lists tokens stripped from transcripts before any further
// processing. Script variants of the same term are listed separately.
var contentDenylist = []string{"സെക്സ്", "sex", "porn", "xxx"}

// domainKeywordSets are multilingual synonym sets shared between issue types.
var domainKeywordSets = map[string][]string{
	"connectivity": {"internet", "ഇന്റർനെറ്റ്", "connection", "കണക്ഷൻ", "connectivity", "കണക്റ്റിവിറ്റി", "online", "ഓൺലൈൻ"},
	"fiber":        {"fiber", "ഫൈബർ", "los", "optical", "കേബിൾ", "cable"},
	"speed":        {"speed", "സ്പീഡ്", "വേഗത", "slow", "സ്ലോ", "buffering", "ബഫറിങ്", "lagging", "മന്ദഗതി"},
	"wifi":         {"wifi", "വൈഫൈ", "router", "റൗട്ടർ", "signal", "സിഗ്നൽ", "range", "റേഞ്ച്", "ssid"},
	"tv":           {"tv", "ടിവി", "channel", "ചാനൽ", "screen", "സ്ക്രീൻ", "remote", "റിമോട്ട്"},
	"billing":      {"bill", "ബിൽ", "payment", "പേയ്മെന്റ്", "recharge", "റീചാർജ്", "plan", "പ്ലാൻ", "amount", "തുക"},
}

// issueTable is the ordered issue-type table. Order is the score tie-break.
var issueTable = []IssueDefinition{
	{
		Type: "internet_down",
		Keywords: []string{
			"നെറ്റ് കിട്ടുന്നില്ല", "ഇന്റർനെറ്റ് ഇല്ല", "കണക്ഷൻ പോയി",
			"internet not working", "no connection", "no internet",
			"ഇന്റർനെറ്റ് പ്രവർത്തിക്കുന്നില്ല", "ഇന്റർനെറ്റ് വരുന്നില്ല", "നെറ്റ് പോയി",
			"offline", "disconnected", "red light", "ചുവന്ന ലൈറ്റ്", "റെഡ് ലൈറ്റ്",
			"los light", "fiber cut", "ഫൈബർ കട്ട്", "fiber break", "ഫൈബർ ബ്രേക്ക്",
			"signal lost", "സിഗ്നൽ ഇല്ല",
		},
		DomainSets:  []string{"connectivity", "fiber"},
		Description: "internet connection completely down, no connectivity at all",
	},
	{
		Type: "slow_internet",
		Keywords: []string{
			"വേഗത കുറവ്", "സ്ലോ", "പതുക്കെ", "slow", "buffering",
			"lagging", "മന്ദഗതി", "താമസം", "delay",
			"loading takes time", "ലോഡിംഗ് സമയമെടുക്കുന്നു", "വേഗത കുറഞ്ഞു",
			"സ്പീഡ് കുറവാണ്",
		},
		DomainSets:  []string{"speed", "connectivity"},
		Description: "internet working but slow, pages load slowly, streaming buffers",
	},
	{
		Type: "wifi_issues",
		Keywords: []string{
			"വൈഫൈ", "wifi", "wireless", "password", "പാസ്‌വേഡ്",
			"devices not connecting", "ഉപകരണങ്ങൾ കണക്റ്റ് ചെയ്യുന്നില്ല",
			"ssid", "network name", "നെറ്റ്‌വർക്ക് പേര്",
			"വൈഫൈ പ്രവർത്തിക്കുന്നില്ല",
		},
		DomainSets:  []string{"wifi"},
		Description: "wifi network problems, password, range, device connection",
	},
	{
		Type: "tv_issues",
		Keywords: []string{
			"ടിവി", "ചാനൽ", "tv", "channel", "സെറ്റ് ടോപ് ബോക്സ്", "set top box",
			"screen", "display", "സ്ക്രീൻ", "ഡിസ്പ്ലേ", "remote", "റിമോട്ട്",
			"no signal", "channels missing", "ചാനലുകൾ കാണുന്നില്ല", "ചാനൽ കാണുന്നില്ല",
		},
		DomainSets:  []string{"tv"},
		Description: "cable tv and set top box problems, missing channels, no signal",
	},
	{
		Type: "billing_issues",
		Keywords: []string{
			"ബിൽ", "bill", "payment", "പേയ്മെന്റ്", "recharge", "റീചാർജ്",
			"overcharged", "അധിക ചാർജ്", "due date", "തീയതി", "amount",
			"തുക", "plan", "പ്ലാൻ", "subscription", "സബ്സ്ക്രിപ്ഷൻ",
		},
		DomainSets:  []string{"billing"},
		Description: "billing payment recharge and plan related complaints",
	},
}

// subIssueTable nests sub-issue indicator lists under each issue type.
var subIssueTable = map[string][]SubIssue{
	"internet_down": {
		{ID: "modem_issue", Indicators: []string{"light", "blinking", "ലൈറ്റ്", "മിന്നുന്നു", "power", "പവർ", "restart", "റീസ്റ്റാർട്ട്"}},
		{ID: "adapter_issue", Indicators: []string{"adapter", "അഡാപ്റ്റർ", "charger", "ചാർജർ"}},
		{ID: "cable_issue", Indicators: []string{"cable", "കേബിൾ", "wire", "വയർ", "cut", "മുറിച്ചു", "damaged", "കേടായി", "loose", "അയഞ്ഞു"}},
		{ID: "fiber_cut", Indicators: []string{"red light", "ചുവന്ന ലൈറ്റ്", "റെഡ് ലൈറ്റ്", "los", "los light", "fiber cut", "ഫൈബർ കട്ട്", "fiber break", "ഫൈബർ ബ്രേക്ക്", "signal lost", "സിഗ്നൽ ഇല്ല"}},
		{ID: "area_outage", Indicators: []string{"area", "പ്രദേശം", "neighborhood", "അയൽപക്കം", "everyone", "എല്ലാവർക്കും", "outage", "തകരാർ"}},
	},
	"slow_internet": {
		{ID: "peak_hours", Indicators: []string{"evening", "വൈകുന്നേരം", "night", "രാത്രി", "busy", "തിരക്ക്", "specific time", "പ്രത്യേക സമയം"}},
		{ID: "wifi_interference", Indicators: []string{"walls", "ചുമരുകൾ", "distance", "ദൂരം", "devices", "ഉപകരണങ്ങൾ", "microwave", "മൈക്രോവേവ്"}},
	},
	"wifi_issues": {
		{ID: "password_forgotten", Indicators: []string{"password", "പാസ്‌വേഡ്", "forgot", "മറന്നു", "അറിയില്ല"}},
		{ID: "range_issue", Indicators: []string{"range", "റേഞ്ച്", "far", "ദൂരെ", "weak", "ദുർബലമാണ്"}},
	},
	"tv_issues": {
		{ID: "stb_issue", Indicators: []string{"set top box", "സെറ്റ് ടോപ് ബോക്സ്", "box", "ബോക്സ്"}},
		{ID: "signal_issue", Indicators: []string{"no signal", "സിഗ്നൽ ഇല്ല"}},
		{ID: "remote_issue", Indicators: []string{"remote", "റിമോട്ട്"}},
	},
	"billing_issues": {
		{ID: "payment_not_reflected", Indicators: []string{"paid", "അടച്ചു", "not reflected", "ആക്റ്റീവ് ആയില്ല"}},
		{ID: "wrong_amount", Indicators: []string{"overcharged", "അധിക ചാർജ്", "wrong amount", "തുക തെറ്റാണ്"}},
	},
}

// priorityRules short-circuit tiered scoring for unambiguous physical-layer
// signals, in evaluation order.
var priorityRules = []PriorityRule{
	{
		Name:     "no_power",
		Issue:    "internet_down",
		SubIssue: "adapter_issue",
		Indicators: []string{
			"no light", "no power", "ലൈറ്റ് ഇല്ല", "ലൈറ്റ് വരുന്നില്ല", "പവർ ഇല്ല",
			"പവർ വരുന്നില്ല", "adapter", "അഡാപ്റ്റർ", "കറന്റ് ഇല്ല",
		},
		Metadata: map[string]bool{"needs_technician": false, "physical_layer": true},
	},
	{
		Name:     "red_light",
		Issue:    "internet_down",
		SubIssue: "fiber_cut",
		Indicators: []string{
			"red light", "ചുവന്ന ലൈറ്റ്", "റെഡ് ലൈറ്റ്", "los", "los light",
			"ചുവന്ന", "ചുവപ്പ്",
		},
		Metadata: map[string]bool{"needs_technician": true, "physical_layer": true},
	},
}

// Extraction patterns shared by the classifier.
var (
	// SpeedPattern matches a number with a speed unit, e.g. "20 mbps".
	SpeedPattern = regexp.MustCompile(`(?i)(\d+)\s*(kbps|mbps|gbps)`)

	// ErrorCodePattern matches a mentioned error code, e.g. "error code e104".
	ErrorCodePattern = regexp.MustCompile(`(?i)error\s*(?:code)?[:\s]*([a-z]?\d{2,4})`)

	// DurationPattern matches a rough issue duration in Malayalam or English,
	// e.g. "2 ദിവസം ആയി", "3 days".
	DurationPattern = regexp.MustCompile(`(?i)(\d+)\s*(ദിവസം|മണിക്കൂർ|മിനിറ്റ്|day|days|hour|hours|minute|minutes)`)
)
