package partner

// Ratios are written as points spent over units received, exactly as the
// issuer publishes them (1300 points for 1000 miles is 1300.0 / 1000).
var partners = []Partner{
	// Airline partners
	{
		ID:        "cathay",
		Name:      "캐세이 (아시아 마일즈)",
		Category:  CategoryFlight,
		Ratio:     1.0 / 1,
		Valuation: 25,
		Strategy:  "원월드 멀티캐리어·JAL/캐세이 단거리·미서부·카타르 발권",
		StrategyByRegion: map[Region]string{
			RegionAsia:       "JAL/캐세이 단거리 효율",
			RegionEurope:     "원월드 멀티캐리어 조합",
			RegionUSA:        "미 서부 노선",
			RegionMiddleEast: "카타르 파트너 발권",
		},
	},
	{
		ID:        "flyingblue",
		Name:      "플라잉 블루 (Flying Blue Miles)",
		Category:  CategoryFlight,
		Ratio:     1.0 / 1,
		Valuation: 22,
		Strategy:  "스카이팀·Promo Rewards·대서양 횡단·AF/KLM 경유",
		StrategyByRegion: map[Region]string{
			RegionAsia:       "스카이팀 파트너",
			RegionEurope:     "Promo Rewards 할인 필수",
			RegionUSA:        "대서양 횡단 노선",
			RegionMiddleEast: "AF/KLM 경유편",
		},
	},
	{
		ID:        "finnair",
		Name:      "Finnair Plus (Avios)",
		Category:  CategoryFlight,
		Ratio:     1.0 / 1,
		Valuation: 30,
		Strategy:  "JAL 일본 최저가·헬싱키 허브·원월드·카타르 Qsuite",
		StrategyByRegion: map[Region]string{
			RegionAsia:       "JAL 일본 노선 최저가",
			RegionEurope:     "헬싱키 허브 직항",
			RegionUSA:        "원월드 파트너 연동",
			RegionMiddleEast: "카타르 Qsuite 핵심 경로",
		},
	},
	{ID: "airasia", Name: "AirAsia rewards (BIG 포인트)", Category: CategoryFlight, Ratio: 1.0 / 1, Valuation: 12, Strategy: "동남아 단거리 노선용"},
	{
		ID:        "delta",
		Name:      "델타 스카이마일스®",
		Category:  CategoryFlight,
		Ratio:     1300.0 / 1000,
		Valuation: 15,
		Strategy:  "유효기간 없는 스카이팀 마일리지 확보",
		StrategyByRegion: map[Region]string{
			RegionAsia:       "대한항공 유증 없는 발권",
			RegionEurope:     "버진 애틀랜틱 연동",
			RegionUSA:        "델타 직항 및 허브",
			RegionMiddleEast: "스카이팀 파트너",
		},
	},
	{
		ID:        "singapore",
		Name:      "싱가포르 항공 크리스플라이어",
		Category:  CategoryFlight,
		Ratio:     1300.0 / 1000,
		Valuation: 20,
		Strategy:  "동남아/미주 프리미엄 캐빈",
		StrategyByRegion: map[Region]string{
			RegionAsia:       "동남아 프리미엄 캐빈",
			RegionEurope:     "자사 비즈니스석 확보",
			RegionUSA:        "최장거리 노선 독점",
			RegionMiddleEast: "싱가포르 경유 노선",
		},
	},
	{ID: "vietnam", Name: "베트남 항공 로터스마일즈", Category: CategoryFlight, Ratio: 1300.0 / 1000, Valuation: 15, Strategy: "동남아 노선 스카이팀 활용"},
	{ID: "koreanair", Name: "대한항공 (SKYPASS)", Category: CategoryFlight, Ratio: 1500.0 / 1000, Valuation: 18, Strategy: "국내 거주자에게 가장 범용적이나 차감율 확인 필요"},
	{ID: "eva", Name: "에바 항공 인피니티 마일리지랜드", Category: CategoryFlight, Ratio: 1500.0 / 1000, Valuation: 18, Strategy: "대만 경유 및 스타얼라이언스 활용"},
	{ID: "turkish", Name: "터키항공 Miles&Smiles", Category: CategoryFlight, Ratio: 1500.0 / 1000, Valuation: 20, Strategy: "스타얼라이언스 유럽 노선"},
	{ID: "etihad", Name: "에티하드 게스트", Category: CategoryFlight, Ratio: 1500.0 / 1000, Valuation: 20, Strategy: "중동 경유 유럽/미주"},
	{ID: "hainan", Name: "하이난 항공 포츈 윙스 클럽", Category: CategoryFlight, Ratio: 1500.0 / 1000, Valuation: 12, Strategy: "중국 노선"},
	{ID: "aeroplan", Name: "에어로플랜 (에어캐나다)", Category: CategoryFlight, Ratio: 1000.0 / 500, Valuation: 20, Strategy: "스타얼라이언스 효율적 발권"},
	{ID: "qatar", Name: "카타르항공 프리빌리지 클럽 (Avios)", Category: CategoryFlight, Ratio: 1000.0 / 500, Valuation: 30, Strategy: "핀에어 대비 효율 낮음(핀에어 우선 고려)"},
	{ID: "united", Name: "유나이티드 마일리지플러스®", Category: CategoryFlight, Ratio: 1000.0 / 500, Valuation: 18, Strategy: "스타얼라이언스 활용"},
	{ID: "jal", Name: "JAL 마일리지 뱅크", Category: CategoryFlight, Ratio: 1000.0 / 500, Valuation: 35, Strategy: "직전환 시 효율은 낮으나 JAL 좌석 가용성 최고"},

	// Hotel partners
	{ID: "hilton", Name: "Hilton Honors Points", Category: CategoryHotel, Ratio: 1000.0 / 2000, Valuation: 7, Strategy: "5연박 시 1박 무료 혜택 시 가치 극대화"},
	{ID: "marriott", Name: "Marriott Bonvoy™", Category: CategoryHotel, Ratio: 1.0 / 1, Valuation: 10, Strategy: "글로벌 체인 범용성 최고"},
	{ID: "ihg", Name: "IHG One Rewards", Category: CategoryHotel, Ratio: 1.0 / 1, Valuation: 8, Strategy: "인터컨티넨탈 등 체인 활용"},
	{ID: "all", Name: "ALL Loyalty programme (아코르)", Category: CategoryHotel, Ratio: 1050.0 / 300, Valuation: 25, Strategy: "유럽/동남아 아코르 계열 호텔"},
	{ID: "wyndham", Name: "Wyndham Rewards", Category: CategoryHotel, Ratio: 1000.0 / 400, Valuation: 12, Strategy: "저가형 숙소/리조트"},
}

var bookingURLs = map[string]string{
	"cathay":     "https://www.asiamiles.com/",
	"flyingblue": "https://www.flyingblue.com/",
	"finnair":    "https://www.finnair.com/",
	"airasia":    "https://www.airasia.com/",
	"delta":      "https://www.delta.com/",
	"singapore":  "https://www.singaporeair.com/",
	"vietnam":    "https://www.vietnamairlines.com/",
	"koreanair":  "https://www.koreanair.com/",
	"eva":        "https://www.evaair.com/",
	"turkish":    "https://www.turkishairlines.com/",
	"etihad":     "https://www.etihadguest.com/",
	"hainan":     "https://www.hainanairlines.com/",
	"aeroplan":   "https://www.aircanada.com/aeroplan/",
	"qatar":      "https://www.qatarairways.com/",
	"united":     "https://www.united.com/",
	"jal":        "https://www.jal.co.jp/",
	"hilton":     "https://www.hilton.com/",
	"marriott":   "https://www.marriott.com/",
	"ihg":        "https://www.ihg.com/",
	"all":        "https://all.accor.com/",
	"wyndham":    "https://www.wyndhamrewards.com/",
}

// BadgeKind drives how the dashboard colours an advisory label.
type BadgeKind string

const (
	BadgeBest      BadgeKind = "best"
	BadgeVersatile BadgeKind = "versatile"
	BadgeQatarTip  BadgeKind = "qatar-tip"
)

// Badge is an advisory label attached to a partner row.
type Badge struct {
	Label   string    `json:"label"`
	Kind    BadgeKind `json:"kind"`
	Tooltip string    `json:"tooltip,omitempty"`
}

var badges = map[string]Badge{
	"finnair":   {Label: "Best", Kind: BadgeBest},
	"cathay":    {Label: "Best", Kind: BadgeBest},
	"koreanair": {Label: "범용성 좋음", Kind: BadgeVersatile, Tooltip: "한국 현대카드만의 1.5:1 직항(대한항공) 활용"},
	"qatar":     {Label: "핀에어 우회 권장", Kind: BadgeQatarTip, Tooltip: "같은 Avios인데 핀에어는 1:1, 카타르는 2:1. JAL/BA 이용 시 무조건 핀에어로 전환하세요."},
}

// All returns a copy of the dataset in display order.
func All() []Partner {
	out := make([]Partner, len(partners))
	copy(out, partners)
	return out
}

// Lookup returns the partner with the given id.
func Lookup(id string) (Partner, bool) {
	for _, p := range partners {
		if p.ID == id {
			return p, true
		}
	}
	return Partner{}, false
}

// BookingURL returns the partner's own booking or award-search page.
func BookingURL(id string) (string, bool) {
	u, ok := bookingURLs[id]
	return u, ok
}

// BadgeFor returns the advisory label for a partner, if it has one.
func BadgeFor(id string) (Badge, bool) {
	b, ok := badges[id]
	return b, ok
}
