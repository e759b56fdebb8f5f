package models

// Comment is embedded in the course row; (Timestamp, UserID) identifies a submission.
type Comment struct {
	Usuario      string `json:"usuario"`
	Fecha        string `json:"fecha"`
	Calificacion int    `json:"calificacion"`
	Comentario   string `json:"comentario"`
	UserID       string `json:"userId"`
	UserEmail    string `json:"userEmail"`
	Timestamp    string `json:"timestamp"`
}
