package store

// Account is keyed by email. Password holds a bcrypt hash and is never
// serialized into responses or the session file.
type Account struct {
	Email     string `gorm:"primaryKey" json:"email"`
	Name      string `gorm:"not null" json:"name"`
	Password  string `gorm:"not null" json:"-"`
	StudentNo string `json:"student_no,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"` // data-URI encoded image
	CreatedAt int64  `json:"created_at"`           // epoch millis, assigned by the store
}

// Document holds the raw bytes of one course unit's reading material (a PDF).
// Key is the encoded unit key, see key.go.
type Document struct {
	Key       string `gorm:"primaryKey"`
	Content   []byte `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

// Note is one plain-text note per course, overwritten on save.
type Note struct {
	CourseID string `gorm:"primaryKey" json:"course_id"`
	Text     string `json:"text"`
}

// Progress is a per-course completion percentage. The store persists whatever
// it is given; the 0-100 range and "only increase" rule are caller discipline.
type Progress struct {
	CourseID string `gorm:"primaryKey" json:"course_id"`
	Percent  int    `json:"percent"`
}

// SharedResource is immutable after creation; there is no delete path.
type SharedResource struct {
	ID          string `gorm:"primaryKey" json:"id"`
	CourseID    string `json:"course_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	SenderName  string `json:"sender_name"`
	SenderID    string `json:"sender_id"`
	Date        int64  `json:"date"` // epoch millis
}

// DirectMessage is immutable once sent, except for the read flag.
type DirectMessage struct {
	ID       string `gorm:"primaryKey" json:"id"`
	FromID   string `json:"from_id"`
	FromName string `json:"from_name"`
	ToID     string `json:"to_id"`
	Content  string `json:"content"`
	Date     int64  `json:"date"` // epoch millis
	IsRead   bool   `json:"is_read"`
}

// AggregateStat is a named counter, e.g. total study minutes.
type AggregateStat struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value int64  `json:"value"`
}

// CourseMediaLink overrides the default lecture URL for one course.
type CourseMediaLink struct {
	CourseID string `gorm:"primaryKey" json:"course_id"`
	URL      string `json:"url"`
}
