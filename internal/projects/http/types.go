package http

type createReq struct {
	Name               string   `json:"name"`
	Client             string   `json:"client"`
	PartsCount         int      `json:"parts_count"`
	ValidationRequired bool     `json:"validation_required"`
	ShareWith          []string `json:"share_with,omitempty"`
	CreateChat         *bool    `json:"create_chat,omitempty"`
	Notify             *bool    `json:"notify,omitempty"`
}

type statusReq struct {
	Status string `json:"status"`
}

type progressReq struct {
	Progress int `json:"progress"`
}

type rejectReq struct {
	Reason string `json:"reason"`
}
