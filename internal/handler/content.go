package handler

import (
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/media"
	"go-admin-dashboard/internal/service"
	"net/http"
	"strings"
)

func field(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// NewAchievementHandler serves /achievements and its forms.
func NewAchievementHandler(b *Base, svc *service.AchievementService, ms *media.Store) *ContentHandler[data.Achievement] {
	return &ContentHandler[data.Achievement]{
		Base: b, svc: svc, media: ms,
		collection: data.KeyAchievements,
		title:      "Achievements",
		listPath:   "/achievements",
		addPath:    "/add-achievements",
		editPath:   "/edit-achievements",
		listTmpl:   "achievements.html",
		formTmpl:   "achievement_form.html",
		decode: func(r *http.Request, a data.Achievement) data.Achievement {
			a.Name = field(r, "name")
			a.Achievement = field(r, "achievement")
			a.Link = field(r, "link")
			a.Date = field(r, "date")
			a.Category = field(r, "category")
			a.PhotoLink = field(r, "photoLink")
			return a
		},
		image: imageField[data.Achievement]{
			Name: "photo",
			Get:  func(a data.Achievement) string { return a.Photo },
			Set:  func(a data.Achievement, url string) data.Achievement { a.Photo = url; return a },
		},
	}
}

// NewActivityHandler serves /recent-activities and its forms.
func NewActivityHandler(b *Base, svc *service.ActivityService, ms *media.Store) *ContentHandler[data.Activity] {
	return &ContentHandler[data.Activity]{
		Base: b, svc: svc, media: ms,
		collection: data.KeyActivities,
		title:      "Recent Activities",
		listPath:   "/recent-activities",
		addPath:    "/add-activity",
		editPath:   "/edit-activity",
		listTmpl:   "activities.html",
		formTmpl:   "activity_form.html",
		decode: func(r *http.Request, a data.Activity) data.Activity {
			a.Title = field(r, "title")
			a.Description = field(r, "description")
			a.Date = field(r, "date")
			return a
		},
		image: imageField[data.Activity]{
			Name: "photo",
			Get:  func(a data.Activity) string { return a.Photo },
			Set:  func(a data.Activity, url string) data.Activity { a.Photo = url; return a },
		},
	}
}

// NewNewsHandler serves /news and its forms.
func NewNewsHandler(b *Base, svc *service.NewsService, ms *media.Store) *ContentHandler[data.News] {
	return &ContentHandler[data.News]{
		Base: b, svc: svc, media: ms,
		collection: data.KeyNews,
		title:      "News",
		listPath:   "/news",
		addPath:    "/add-news",
		editPath:   "/edit-news",
		listTmpl:   "news.html",
		formTmpl:   "news_form.html",
		decode: func(r *http.Request, n data.News) data.News {
			n.Title = field(r, "title")
			n.Description = field(r, "description")
			n.Date = field(r, "date")
			n.Category = field(r, "category")
			if n.Category == "" {
				n.Category = data.NewsCategoryNews
			}
			n.Author = field(r, "author")
			n.Link = field(r, "link")
			return n
		},
		image: imageField[data.News]{
			Name: "photo",
			Get:  func(n data.News) string { return n.Photo },
			Set:  func(n data.News, url string) data.News { n.Photo = url; return n },
		},
	}
}

// NewFAQHandler serves /faq and its forms. Deleting an FAQ goes through the
// recycle bin, see TrashHandler.
func NewFAQHandler(b *Base, svc *service.FAQService, ms *media.Store) *ContentHandler[data.FAQ] {
	return &ContentHandler[data.FAQ]{
		Base: b, svc: svc, media: ms,
		collection: data.KeyFAQ,
		title:      "FAQ",
		listPath:   "/faq",
		addPath:    "/add-faq",
		editPath:   "/edit-faq",
		listTmpl:   "faq.html",
		formTmpl:   "faq_form.html",
		decode: func(r *http.Request, f data.FAQ) data.FAQ {
			f.Name = field(r, "name")
			f.Question = field(r, "question")
			f.Answer = field(r, "answer")
			f.Date = field(r, "date")
			return f
		},
		image: imageField[data.FAQ]{
			Name: "picture",
			Get:  func(f data.FAQ) string { return f.Picture },
			Set:  func(f data.FAQ, url string) data.FAQ { f.Picture = url; return f },
		},
	}
}
