package metrics

// IncrementAnnouncementCreated increments the announcement creation counter
func (m *Metrics) IncrementAnnouncementCreated() {
	m.safeExecute("IncrementAnnouncementCreated", func() {
		m.AnnouncementCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementAnnouncementDeleted increments the announcement deletion counter
func (m *Metrics) IncrementAnnouncementDeleted() {
	m.safeExecute("IncrementAnnouncementDeleted", func() {
		m.AnnouncementDeletedTotal.Inc()
	})
}

// IncrementValidationRejected increments the rejected submission counter
func (m *Metrics) IncrementValidationRejected() {
	m.safeExecute("IncrementValidationRejected", func() {
		m.ValidationRejectedTotal.Inc()
	})
}

// SetAnnouncementsTotal sets the total announcements gauge
func (m *Metrics) SetAnnouncementsTotal(count int64) {
	m.safeExecute("SetAnnouncementsTotal", func() {
		m.AnnouncementsTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets the total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
