package contentres

// SubtopicsResponse is the body of a successful subtopics call.
type SubtopicsResponse struct {
	MainTopic string   `json:"main_topic"`
	Subtopics []string `json:"subtopics"`
}

// ProvidersResponse reports the configured and currently reachable providers.
type ProvidersResponse struct {
	Configured int      `json:"configured"`
	Available  []string `json:"available"`
}
