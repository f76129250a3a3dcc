// Package recommend selects bracelet materials and symbols from fixed tables
// based on the wearer's element profile, purpose and religion. Selection is
// deterministic: declaration order, first-three truncation and name dedup are
// part of the contract.
package recommend

// Material describes one bracelet material and its associations.
type Material struct {
	Name        string
	Element     string
	Colors      []string
	Effects     []string
	SuitableFor []string
}

// materials is ordered; candidates are picked in declaration order.
var materials = []Material{
	{
		Name:        "水晶",
		Element:     "水",
		Colors:      []string{"透明", "白色", "紫色", "粉色", "黄色", "绿色", "蓝色"},
		Effects:     []string{"净化能量", "增强直觉", "提升精神力"},
		SuitableFor: []string{"需要净化负能量的人", "追求心灵平静的人"},
	},
	{
		Name:        "琉璃",
		Element:     "火",
		Colors:      []string{"蓝色", "绿色", "红色", "黄色", "紫色"},
		Effects:     []string{"辟邪", "招财", "增强运势"},
		SuitableFor: []string{"追求美好事物的人", "需要提升运势的人"},
	},
	{
		Name:        "和田玉",
		Element:     "土",
		Colors:      []string{"白色", "青白色", "青色", "黄色"},
		Effects:     []string{"养生", "平衡情绪", "增强体质"},
		SuitableFor: []string{"注重健康的人", "需要情绪稳定的人"},
	},
	{
		Name:        "翡翠",
		Element:     "木",
		Colors:      []string{"绿色", "紫色", "红色", "白色"},
		Effects:     []string{"招财", "辟邪", "保平安"},
		SuitableFor: []string{"追求财富的人", "需要保平安的人"},
	},
	{
		Name:        "星月菩提",
		Element:     "木",
		Colors:      []string{"棕色", "红棕色"},
		Effects:     []string{"静心", "开智慧", "增强记忆力"},
		SuitableFor: []string{"修行者", "学生", "需要静心的人"},
	},
	{
		Name:        "金刚菩提",
		Element:     "木",
		Colors:      []string{"棕色", "红棕色"},
		Effects:     []string{"辟邪", "增强意志力", "提升自信"},
		SuitableFor: []string{"需要增强意志力的人", "需要提升自信的人"},
	},
	{
		Name:        "小叶紫檀",
		Element:     "木",
		Colors:      []string{"紫红色", "深棕色"},
		Effects:     []string{"安神", "辟邪", "增强气场"},
		SuitableFor: []string{"睡眠质量差的人", "需要提升气场的人"},
	},
	{
		Name:        "沉香",
		Element:     "木",
		Colors:      []string{"棕色", "黄棕色"},
		Effects:     []string{"静心", "提升灵性", "改善呼吸系统"},
		SuitableFor: []string{"修行者", "呼吸系统不佳的人"},
	},
	{
		Name:        "檀香",
		Element:     "木",
		Colors:      []string{"黄色", "棕黄色"},
		Effects:     []string{"安神", "净化空间", "提升专注力"},
		SuitableFor: []string{"需要提升专注力的人", "睡眠质量差的人"},
	},
	{
		Name:        "蜜蜡",
		Element:     "土",
		Colors:      []string{"黄色", "棕黄色", "红黄色"},
		Effects:     []string{"招财", "保平安", "增强健康"},
		SuitableFor: []string{"追求财富的人", "注重健康的人"},
	},
	{
		Name:        "砗磲",
		Element:     "水",
		Colors:      []string{"白色", "米白色"},
		Effects:     []string{"增强智慧", "提升运势", "改善人际关系"},
		SuitableFor: []string{"需要提升智慧的人", "人际关系不佳的人"},
	},
	{
		Name:        "玛瑙",
		Element:     "火",
		Colors:      []string{"红色", "橙色", "蓝色", "绿色", "紫色"},
		Effects:     []string{"增强勇气", "提升自信", "保平安"},
		SuitableFor: []string{"需要增强勇气的人", "需要提升自信的人"},
	},
	{
		Name:        "青金石",
		Element:     "水",
		Colors:      []string{"蓝色", "深蓝色"},
		Effects:     []string{"增强直觉", "提升智慧", "改善沟通能力"},
		SuitableFor: []string{"需要提升智慧的人", "沟通能力不佳的人"},
	},
	{
		Name:        "珊瑚",
		Element:     "火",
		Colors:      []string{"红色", "粉红色", "白色"},
		Effects:     []string{"招财", "辟邪", "增强血液循环"},
		SuitableFor: []string{"追求财富的人", "血液循环不佳的人"},
	},
	{
		Name:        "松石",
		Element:     "水",
		Colors:      []string{"蓝绿色", "绿色"},
		Effects:     []string{"保平安", "增强运势", "改善呼吸系统"},
		SuitableFor: []string{"需要保平安的人", "呼吸系统不佳的人"},
	},
	{
		Name:        "南红玛瑙",
		Element:     "火",
		Colors:      []string{"红色", "橙红色"},
		Effects:     []string{"招财", "增强运势", "提升活力"},
		SuitableFor: []string{"追求财富的人", "需要提升活力的人"},
	},
	{
		Name:        "黄龙玉",
		Element:     "土",
		Colors:      []string{"黄色", "绿色", "白色"},
		Effects:     []string{"招财", "增强健康", "提升运势"},
		SuitableFor: []string{"追求财富的人", "注重健康的人"},
	},
	{
		Name:        "佛珠",
		Element:     "木",
		Colors:      []string{"棕色", "黑色", "红色"},
		Effects:     []string{"静心", "开智慧", "增强灵性"},
		SuitableFor: []string{"修行者", "需要静心的人"},
	},
}

// materialsByName indexes the ordered table for the religion augmentation
// step.
var materialsByName = func() map[string]Material {
	m := make(map[string]Material, len(materials))
	for _, mat := range materials {
		m[mat.Name] = mat
	}
	return m
}()

// religiousSymbols lists up to six auspicious symbols per religion.
var religiousSymbols = map[string][]string{
	"佛教":  {"佛珠", "莲花", "法轮", "卍字符", "佛像", "六字真言"},
	"道教":  {"太极", "八卦", "五行", "道符", "如意", "灵芝"},
	"基督教": {"十字架", "鱼形符号", "圣经", "天使", "橄榄枝", "鸽子"},
	"无":   {"如意", "福字", "寿字", "平安结", "铜钱", "龙凤"},
}

// religiousMaterials lists religion-specific materials. Only names that also
// exist in the material table can be recommended.
var religiousMaterials = map[string][]string{
	"佛教":  {"菩提子", "檀香木", "金刚菩提", "凤眼菩提", "星月菩提", "砗磲", "绿松石"},
	"道教":  {"黄杨木", "桃木", "檀木", "紫檀", "黑檀", "玉石", "水晶"},
	"基督教": {"橄榄木", "黑檀木", "紫檀木", "水晶", "玛瑙", "橄榄石"},
	"无":   {"黄花梨", "小叶紫檀", "沉香", "金丝楠", "鸡翅木", "红木", "乌木"},
}

// purposeElements substitutes for the missing-element set when the wearer's
// pillars already cover all five elements.
var purposeElements = map[string][]string{
	"财运":  {"金", "木"},
	"事业":  {"火", "木"},
	"健康":  {"土", "金"},
	"婚姻":  {"火", "土"},
	"学业":  {"水", "木"},
	"人际":  {"火", "木"},
	"破小人": {"金", "水"},
}

// defaultPurposeElements is used for unrecognized purposes.
var defaultPurposeElements = []string{"土"}

// wearingGuidance is appended to every generated recommendation.
var wearingGuidance = []string{
	"1. 手串通常佩戴在左手，因为左手靠近心脏，能更好地吸收能量。",
	"2. 新购买的手串最好先净化，可以用清水冲洗或放在阳光下晒一晒。",
	"3. 佩戴时保持心态平和，有助于增强手串的效果。",
	"4. 定期清洁手串，保持其能量纯净。",
}
