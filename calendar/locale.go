package calendar

import (
	"golang.org/x/text/language"
)

// =============================================================================
// LOCALE DATA - Standalone weekday names and week conventions
// =============================================================================
// Name sets are indexed Sunday-first, matching the 1 = Sunday numbering.

type weekdayNames struct {
	full      [7]string
	short     [7]string
	veryShort [7]string
}

var localeNames = map[language.Base]weekdayNames{}

var (
	supportedTags []language.Tag
	localeMatcher language.Matcher
)

func register(tag language.Tag, names weekdayNames) {
	base, _ := tag.Base()
	localeNames[base] = names
	supportedTags = append(supportedTags, tag)
}

func init() {
	// English first: the matcher falls back to the first supported tag.
	register(language.English, weekdayNames{
		full:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		short:     [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		veryShort: [7]string{"S", "M", "T", "W", "T", "F", "S"},
	})
	register(language.German, weekdayNames{
		full:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		short:     [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		veryShort: [7]string{"S", "M", "D", "M", "D", "F", "S"},
	})
	register(language.French, weekdayNames{
		full:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		short:     [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		veryShort: [7]string{"D", "L", "M", "M", "J", "V", "S"},
	})
	register(language.Spanish, weekdayNames{
		full:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		short:     [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		veryShort: [7]string{"D", "L", "M", "X", "J", "V", "S"},
	})
	register(language.Italian, weekdayNames{
		full:      [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		short:     [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		veryShort: [7]string{"D", "L", "M", "M", "G", "V", "S"},
	})
	register(language.Portuguese, weekdayNames{
		full:      [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		short:     [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		veryShort: [7]string{"D", "S", "T", "Q", "Q", "S", "S"},
	})
	register(language.Dutch, weekdayNames{
		full:      [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		short:     [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		veryShort: [7]string{"Z", "M", "D", "W", "D", "V", "Z"},
	})
	register(language.Russian, weekdayNames{
		full:      [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		short:     [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		veryShort: [7]string{"В", "П", "В", "С", "Ч", "П", "С"},
	})
	register(language.Japanese, weekdayNames{
		full:      [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		short:     [7]string{"日", "月", "火", "水", "木", "金", "土"},
		veryShort: [7]string{"日", "月", "火", "水", "木", "金", "土"},
	})
	register(language.Chinese, weekdayNames{
		full:      [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
		short:     [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		veryShort: [7]string{"日", "一", "二", "三", "四", "五", "六"},
	})
	register(language.Arabic, weekdayNames{
		full:      [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
		short:     [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
		veryShort: [7]string{"ح", "ن", "ث", "ر", "خ", "ج", "س"},
	})

	localeMatcher = language.NewMatcher(supportedTags)
}

// namesFor returns the name set for the closest supported locale, English
// when nothing matches.
func namesFor(tag language.Tag) weekdayNames {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	base, _ := supportedTags[idx].Base()
	return localeNames[base]
}

// Regions whose weeks conventionally start on Sunday or Saturday. Everything
// else starts on Monday.
var (
	sundayStartRegions = map[string]bool{
		"US": true, "CA": true, "MX": true, "BR": true, "JP": true, "KR": true,
		"TW": true, "HK": true, "IL": true, "IN": true, "PH": true, "SA": true,
		"ZA": true,
	}
	saturdayStartRegions = map[string]bool{
		"AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true, "IQ": true,
		"IR": true, "JO": true, "KW": true, "LY": true, "OM": true, "QA": true,
		"SD": true, "SY": true,
	}
	// ISO 8601 week numbering (4 days in the first week).
	isoWeekRegions = map[string]bool{
		"AT": true, "BE": true, "CH": true, "CZ": true, "DE": true, "DK": true,
		"EE": true, "ES": true, "FI": true, "FR": true, "GB": true, "HU": true,
		"IE": true, "IT": true, "LT": true, "LU": true, "NL": true, "NO": true,
		"PL": true, "PT": true, "RU": true, "SE": true, "SK": true,
	}
)

func localeRegion(tag language.Tag) string {
	region, _ := tag.Region()
	return region.String()
}

func localeFirstWeekday(tag language.Tag) int {
	region := localeRegion(tag)
	switch {
	case sundayStartRegions[region]:
		return 1
	case saturdayStartRegions[region]:
		return 7
	default:
		return 2
	}
}

func localeMinimumDays(tag language.Tag) int {
	if isoWeekRegions[localeRegion(tag)] {
		return 4
	}
	return 1
}
