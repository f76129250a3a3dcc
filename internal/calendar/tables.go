// Package calendar implements the lunisolar calendar conversion, the
// four-pillar (生辰八字) derivation and the zodiac / star-sign lookups the
// prediction service is built on. Everything here is a pure function over
// fixed tables; the tables are behavioral contracts and must not be
// re-derived from astronomical data.
package calendar

// The ten heavenly stems and twelve earthly branches, in cycle order.
var (
	heavenlyStems   = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	earthlyBranches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

// zodiacAnimals is indexed by (year - 4) mod 12.
var zodiacAnimals = []string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// fiveElements maps each stem and branch to its element.
var fiveElements = map[string]string{
	"甲": "木", "乙": "木",
	"丙": "火", "丁": "火",
	"戊": "土", "己": "土",
	"庚": "金", "辛": "金",
	"壬": "水", "癸": "水",
	"子": "水", "亥": "水",
	"寅": "木", "卯": "木",
	"巳": "火", "午": "火",
	"申": "金", "酉": "金",
	"丑": "土", "辰": "土", "未": "土", "戌": "土",
}

// AllElements is the canonical element order used when computing missing
// elements and assembling color lists.
var AllElements = []string{"木", "火", "土", "金", "水"}

// ElementColors maps each element to its pair of lucky colors.
var ElementColors = map[string][]string{
	"木": {"绿色", "青色"},
	"火": {"红色", "紫色"},
	"土": {"黄色", "棕色"},
	"金": {"白色", "金色"},
	"水": {"黑色", "蓝色"},
}

// Zodiac returns the zodiac animal for a year.
func Zodiac(year int) string {
	return zodiacAnimals[mod(year-4, 12)]
}

// ElementOf returns the element of a single stem or branch symbol, with ok
// false for anything outside the two cycles.
func ElementOf(symbol string) (string, bool) {
	e, ok := fiveElements[symbol]
	return e, ok
}

// mod is a floor modulus: the result always has the sign of m. The pillar
// arithmetic relies on this for years and day counts before the epoch.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
