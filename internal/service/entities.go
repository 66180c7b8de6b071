package service

import (
	"go-admin-dashboard/internal/data"
)

// AchievementService manages the "achievements" collection.
type AchievementService = ContentService[data.Achievement]

// ActivityService manages the "activities" collection.
type ActivityService = ContentService[data.Activity]

// NewsService manages the "news" collection.
type NewsService = ContentService[data.News]

// FAQService manages the "faq" collection.
type FAQService = ContentService[data.FAQ]

var achievementSpec = ListSpec[data.Achievement]{
	SearchFields: func(a data.Achievement) []string {
		return []string{a.Name, a.Category, a.Achievement}
	},
	SortFields: map[string]SortField[data.Achievement]{
		"name": {Kind: SortText, Value: func(a data.Achievement) string { return a.Name }},
		"date": {Kind: SortDate, Value: func(a data.Achievement) string { return a.Date }},
	},
	DefaultSort: "name",
}

var activitySpec = ListSpec[data.Activity]{
	SearchFields: func(a data.Activity) []string { return []string{a.Title} },
	SortFields: map[string]SortField[data.Activity]{
		"title": {Kind: SortText, Value: func(a data.Activity) string { return a.Title }},
		"date":  {Kind: SortDate, Value: func(a data.Activity) string { return a.Date }},
	},
	DefaultSort: "title",
}

var newsSpec = ListSpec[data.News]{
	SearchFields: func(n data.News) []string { return []string{n.Title} },
	SortFields: map[string]SortField[data.News]{
		"title": {Kind: SortText, Value: func(n data.News) string { return n.Title }},
		"date":  {Kind: SortDate, Value: func(n data.News) string { return n.Date }},
	},
	DefaultSort: "title",
}

var faqSpec = ListSpec[data.FAQ]{
	SearchFields: func(f data.FAQ) []string { return []string{f.Question} },
	SortFields: map[string]SortField[data.FAQ]{
		"question": {Kind: SortText, Value: func(f data.FAQ) string { return f.Question }},
		"date":     {Kind: SortDate, Value: func(f data.FAQ) string { return f.Date }},
	},
	DefaultSort: "question",
}

// ValidateAchievement reports missing required achievement fields.
func ValidateAchievement(a data.Achievement) FieldErrors {
	fe := FieldErrors{}
	require(fe, "name", a.Name, "Name")
	require(fe, "achievement", a.Achievement, "Achievement")
	require(fe, "link", a.Link, "Link")
	require(fe, "date", a.Date, "Date")
	require(fe, "category", a.Category, "Category")
	return fe
}

// ValidateActivity reports missing required activity fields.
func ValidateActivity(a data.Activity) FieldErrors {
	fe := FieldErrors{}
	require(fe, "title", a.Title, "Title")
	require(fe, "description", a.Description, "Description")
	require(fe, "date", a.Date, "Date")
	return fe
}

// ValidateNews reports missing required news fields.
func ValidateNews(n data.News) FieldErrors {
	fe := FieldErrors{}
	require(fe, "title", n.Title, "Title")
	require(fe, "description", n.Description, "Description")
	require(fe, "date", n.Date, "Date")
	require(fe, "author", n.Author, "Author")
	return fe
}

// ValidateFAQ reports missing required FAQ fields.
func ValidateFAQ(f data.FAQ) FieldErrors {
	fe := FieldErrors{}
	require(fe, "name", f.Name, "Name")
	require(fe, "question", f.Question, "Question")
	require(fe, "answer", f.Answer, "Answer")
	require(fe, "date", f.Date, "Date")
	require(fe, "picture", f.Picture, "Picture")
	return fe
}

// NewAchievementService creates the achievements service.
func NewAchievementService(kv data.KVStore, ids *data.IDGenerator, log *ActivityLog) *AchievementService {
	return &AchievementService{
		kv: kv, coll: data.Achievements, ids: ids, spec: achievementSpec,
		validate: ValidateAchievement, label: "Achievement", log: log,
		describe: func(a data.Achievement) string { return a.Name },
	}
}

// NewActivityService creates the recent activities service.
func NewActivityService(kv data.KVStore, ids *data.IDGenerator, log *ActivityLog) *ActivityService {
	return &ActivityService{
		kv: kv, coll: data.Activities, ids: ids, spec: activitySpec,
		validate: ValidateActivity, label: "Activity", log: log,
		describe: func(a data.Activity) string { return a.Title },
	}
}

// NewNewsService creates the news service.
func NewNewsService(kv data.KVStore, ids *data.IDGenerator, log *ActivityLog) *NewsService {
	return &NewsService{
		kv: kv, coll: data.NewsItems, ids: ids, spec: newsSpec,
		validate: ValidateNews, label: "News", log: log,
		describe: func(n data.News) string { return n.Title },
	}
}

// NewFAQService creates the FAQ service.
func NewFAQService(kv data.KVStore, ids *data.IDGenerator, log *ActivityLog) *FAQService {
	return &FAQService{
		kv: kv, coll: data.FAQs, ids: ids, spec: faqSpec,
		validate: ValidateFAQ, label: "FAQ", log: log,
		describe: func(f data.FAQ) string { return f.Question },
		reserved: []*data.Collection[data.FAQ]{data.RecycleBin},
	}
}
