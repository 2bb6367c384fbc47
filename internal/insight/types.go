package insight

// ProductivityOutput is the personal weekly insight. Insight is empty when
// the narrative generator is unavailable.
type ProductivityOutput struct {
	TotalHours   float64
	MeetingHours float64
	Insight      string
}

// MemberSummary aggregates one reporting user's week.
type MemberSummary struct {
	UserID      string
	Name        string
	WorkedHours float64
	PTOHours    float64
	RecordIDs   []string
}

// TeamSummaryOutput is the manager's weekly aggregate plus narrative.
type TeamSummaryOutput struct {
	Members   []MemberSummary
	Narrative string
}

// MissingOutput lists the active reports who have not submitted this week.
type MissingOutput struct {
	Missing   []string
	Submitted []string
}

// ReviewInput names the records a manager is acting on. Reason is required
// for rejections.
type ReviewInput struct {
	RecordIDs []string
	Reason    string
}
