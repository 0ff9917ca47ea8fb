package replay

// EventRecord is one serialized input event
type EventRecord struct {
	K string  `json:"k"`           // Kind: "key" or "motion"
	N string  `json:"n,omitempty"` // Key name
	D bool    `json:"d,omitempty"` // Key down
	X float32 `json:"x,omitempty"` // XRel
	Y float32 `json:"y,omitempty"` // YRel
	C bool    `json:"c,omitempty"` // Pointer captured
}

// FrameInput records the elapsed time and input events of a single frame
type FrameInput struct {
	F  int           `json:"f"`           // Frame number
	DT float32       `json:"dt"`          // Elapsed seconds
	E  []EventRecord `json:"e,omitempty"` // Events, in delivery order
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
