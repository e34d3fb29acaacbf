// Package starter holds the predefined templates offered on an empty editor.
package starter

import (
	"github.com/mhoo999/mail-maker/internal/domains"
)

const copyright = "© 2025 All rights reserved"

// Definitions returns the starter templates. Each call builds new values, so
// callers may modify the result.
func Definitions() []domains.Template {
	return []domains.Template{
		{
			ID:          "notice",
			Name:        "공지 메일",
			Description: "중요한 공지사항을 전달하는 템플릿",
			Kind:        domains.KindNotice,
			Blocks: domains.Blocks{
				domains.HeaderBlock{BadgeText: "공지"},
				domains.TitleBlock{Text: "중요 공지사항", Level: domains.TitleH1},
				domains.TextBlock{Content: "<p>안녕하세요. 중요한 공지사항을 전달드립니다.</p>"},
				domains.HighlightBlock{
					Variant: domains.HighlightInfo,
					Title:   "알림",
					Content: "<p>중요한 내용을 여기에 작성하세요.</p>",
				},
				domains.DividerBlock{},
				domains.FooterBlock{CompanyName: "회사명", Copyright: copyright},
			},
		},
		{
			ID:          "promotion",
			Name:        "프로모션 메일",
			Description: "이벤트나 프로모션을 홍보하는 템플릿",
			Kind:        domains.KindPromotion,
			Blocks: domains.Blocks{
				domains.HeaderBlock{BadgeText: "특별 혜택"},
				domains.TitleBlock{Text: "특별한 혜택을 놓치지 마세요!", Level: domains.TitleH1},
				domains.TextBlock{Content: "<p>지금 바로 확인하고 특별한 혜택을 받아보세요.</p>"},
				domains.BadgeBlock{Text: "기간 한정", Variant: domains.BadgeRed},
				domains.ImageBlock{URL: "https://via.placeholder.com/600x300", Alt: "프로모션 이미지"},
				domains.ButtonBlock{Text: "자세히 보기", URL: "https://example.com", Variant: domains.ButtonPrimary},
				domains.DividerBlock{},
				domains.FooterBlock{CompanyName: "회사명", Copyright: copyright},
			},
		},
		{
			ID:          "newsletter",
			Name:        "뉴스레터",
			Description: "정기적인 소식을 전달하는 템플릿",
			Kind:        domains.KindNewsletter,
			Blocks: domains.Blocks{
				domains.HeaderBlock{BadgeText: "Newsletter"},
				domains.TitleBlock{Text: "이번 주의 소식", Level: domains.TitleH1},
				domains.TextBlock{Content: "<p>안녕하세요! 이번 주에도 유익한 소식을 전해드립니다.</p>"},
				domains.StatsBlock{Stats: []domains.StatItem{
					{Label: "신규 기능", Value: "3"},
					{Label: "개선 사항", Value: "12"},
					{Label: "구독자", Value: "1.2k"},
				}},
				domains.TitleBlock{Text: "주요 소식 1", Level: domains.TitleH2},
				domains.TextBlock{Content: "<p>첫 번째 소식 내용입니다.</p>"},
				domains.TitleBlock{Text: "주요 소식 2", Level: domains.TitleH2},
				domains.TextBlock{Content: "<p>두 번째 소식 내용입니다.</p>"},
				domains.ButtonBlock{Text: "더 알아보기", URL: "https://example.com", Variant: domains.ButtonPrimary},
				domains.DividerBlock{},
				domains.FooterBlock{CompanyName: "회사명", Copyright: copyright},
			},
		},
	}
}

// Find looks a starter template up by id.
func Find(id string) (domains.Template, bool) {
	for _, t := range Definitions() {
		if t.ID == id {
			return t, true
		}
	}
	return domains.Template{}, false
}
