package data

// Storage keys. Each key holds one JSON document; the field names below are
// the contract any external writer has to match.
const (
	KeyAchievements = "achievements"
	KeyActivities   = "activities"
	KeyNews         = "news"
	KeyFAQ          = "faq"
	KeyRecycleBin   = "recycleBin"
	KeyLog          = "log"

	KeyUserName     = "userName"
	KeyProfileImage = "profileImage"
	KeyDarkMode     = "darkMode"
)

// Achievement categories.
const (
	CategoryInternational = "international"
	CategoryNational      = "national"
	CategoryCampus        = "campus"
)

// News categories.
const (
	NewsCategoryNews   = "News"
	NewsCategoryEvents = "Events"
)

// Achievement is a recognised accomplishment.
type Achievement struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Achievement string `json:"achievement"`
	Link        string `json:"link"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Photo       string `json:"photo"`
	PhotoLink   string `json:"photoLink"`
}

// Activity is a recent activity entry.
type Activity struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Photo       string `json:"photo"`
}

// News is a news or event post. Description is markdown.
type News struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Photo       string `json:"photo"`
	Link        string `json:"link"`
}

// FAQ is a question/answer entry. The recycle bin stores the same shape.
type FAQ struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Date     string `json:"date"`
	Picture  string `json:"picture"`
}

// LogEntry is one line of the dashboard activity log.
type LogEntry struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (a Achievement) RecordID() int64 { return a.ID }
func (a Activity) RecordID() int64    { return a.ID }
func (n News) RecordID() int64        { return n.ID }
func (f FAQ) RecordID() int64         { return f.ID }
func (l LogEntry) RecordID() int64    { return l.ID }

func (a Achievement) WithID(id int64) Achievement { a.ID = id; return a }
func (a Activity) WithID(id int64) Activity       { a.ID = id; return a }
func (n News) WithID(id int64) News               { n.ID = id; return n }
func (f FAQ) WithID(id int64) FAQ                 { f.ID = id; return f }
