package calendar

// starSignCutoffs[m-1] is the day of month m on which the sign changes.
var starSignCutoffs = [12]int{20, 19, 21, 20, 21, 22, 23, 23, 23, 24, 22, 21}

// starSigns has 13 entries: the sentinel Capricorn at both ends lets month 12
// wrap without a special case.
var starSigns = [13]string{
	"摩羯座", "水瓶座", "双鱼座", "白羊座", "金牛座", "双子座",
	"巨蟹座", "狮子座", "处女座", "天秤座", "天蝎座", "射手座", "摩羯座",
}

// StarSign returns the star sign for a solar month and day. Callers pass a
// validated solar date; month is 1..12.
func StarSign(month, day int) string {
	if day < starSignCutoffs[month-1] {
		return starSigns[month-1]
	}
	return starSigns[month]
}
