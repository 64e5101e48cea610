package closure

type CreateClosedDayRequest struct {
	Date   string `json:"date" binding:"required,isodate"`
	Reason string `json:"reason"`
}

type CreateClosedRangeRequest struct {
	Start  string `json:"start" binding:"required,isodate"`
	End    string `json:"end" binding:"required,isodate"`
	Reason string `json:"reason"`
}

type CreateClosedSlotRequest struct {
	FieldID   string `json:"fieldId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,isodate"`
	EndDate   string `json:"endDate" binding:"required,isodate"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
	EndTime   string `json:"endTime" binding:"required,hhmm"`
	Reason    string `json:"reason"`
}
