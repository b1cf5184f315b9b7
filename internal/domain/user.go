package domain

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// User описывает пользователя, вошедшего в систему
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Language задаёт язык интерфейса, на данные не влияет
type Language string

const (
	LanguageEN Language = "en"
	LanguageBN Language = "bn"
)

func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageBN
}

// Toggle возвращает второй поддерживаемый язык.
func (l Language) Toggle() Language {
	if l == LanguageEN {
		return LanguageBN
	}
	return LanguageEN
}
