// internal/model/account.go
package model

// Account security question keys, as stored. Unknown keys render
// as a generic question at the presentation layer.
const (
	QuestionPet    = "pet"
	QuestionCity   = "city"
	QuestionSchool = "school"
	QuestionOther  = "other"
)

type Account struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}
