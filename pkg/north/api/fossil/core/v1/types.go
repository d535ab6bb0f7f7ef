package v1

type BuryPost struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	Era string  `json:"era,omitempty"`
}

// FossilRecord describes a hypothetical find at a map location. When Found is false only Reason is meaningful.
type FossilRecord struct {
	Found          bool    `json:"found"`
	Name           string  `json:"name,omitempty"`
	ScientificName string  `json:"scientific_name,omitempty"`
	Era            string  `json:"era,omitempty"`
	Age            string  `json:"age,omitempty"`
	Formation      string  `json:"formation,omitempty"`
	Description    string  `json:"description,omitempty"`
	Reason         string  `json:"reason,omitempty"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
}

type ExamineResponse struct {
	Html string `json:"html"`
}
