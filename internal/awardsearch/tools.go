package awardsearch

import "fmt"

// Tool describes one external search tool.
type Tool struct {
	ID          string
	Name        string
	Description string
	Build       func(*Builder, SearchParams) string
}

// Link is a built search link ready to be opened.
type Link struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

var tools = []Tool{
	{
		ID:          "graypane",
		Name:        "GrayPane",
		Description: "seats.aero 연동 어워드 좌석 검색·알림 (위 검색 조건 반영)",
		Build:       (*Builder).GrayPane,
	},
	{
		ID:          "pointsyeah",
		Name:        "PointsYeah",
		Description: "검색 속도 빠름, 무료에서도 MR·다양한 카드/항공 프로그램 한눈에 비교",
		Build:       (*Builder).PointsYeah,
	},
	{
		ID:          "awardtool",
		Name:        "AwardTool",
		Description: "마일리지 비교. Panorama 검색으로 유럽·동남아 등 지역 단위, 최대 90일 좌석 한꺼번에",
		Build:       (*Builder).AwardTool,
	},
	{
		ID:          "awardhacker",
		Name:        "AwardHacker",
		Description: "경로별 소요 MR/마일 비교, 어워드 최저가 검색",
		Build:       (*Builder).AwardHacker,
	},
	{
		ID:          "roame",
		Name:        "Roame.travel",
		Description: "구글 플라이트형 UI, 스카이팀·원월드 강점, SkyView로 지역별 가용성 시각화. 왕복 선택 시에도 편도 결과만 제공됨",
		Build:       (*Builder).Roame,
	},
}

// Tools returns the supported tools in display order.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Links builds a link for every tool in display order.
func (b *Builder) Links(p SearchParams) []Link {
	links := make([]Link, 0, len(tools))
	for _, t := range tools {
		links = append(links, b.link(t, p))
	}
	return links
}

// Link builds the link for a single tool.
func (b *Builder) Link(id string, p SearchParams) (Link, error) {
	for _, t := range tools {
		if t.ID == id {
			return b.link(t, p), nil
		}
	}
	return Link{}, fmt.Errorf("unknown search tool %q", id)
}

func (b *Builder) link(t Tool, p SearchParams) Link {
	return Link{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		URL:         t.Build(b, p),
	}
}
