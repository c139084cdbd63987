package route

import "strings"

// Kind вид экрана приложения. Закрытое множество из трёх состояний,
// терминальных среди них нет.
type Kind string

const (
	KindCreate  Kind = "create"
	KindRespond Kind = "respond"
	KindHost    Kind = "host"
)

// Route разобранный путь: один из трёх экранов плюс slug встречи
// для respond/host
type Route struct {
	Kind Kind
	Slug string
}

// Create маршрут создания встречи (экран по умолчанию)
func Create() Route {
	return Route{Kind: KindCreate}
}

// Respond маршрут участника по slug встречи
func Respond(slug string) Route {
	return Route{Kind: KindRespond, Slug: slug}
}

// Host маршрут организатора. Разбирается и сериализуется, но
// отдельного поведения пока не несёт.
func Host(slug string) Route {
	return Route{Kind: KindHost, Slug: slug}
}

// Parse разбирает путь URL в маршрут. Никогда не возвращает ошибку:
// всё нераспознанное трактуется как экран создания.
func Parse(path string) Route {
	trimmed := strings.Trim(path, "/")

	if trimmed == "" || trimmed == "new" {
		return Create()
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) == 2 && parts[1] != "" {
		switch parts[0] {
		case "m":
			return Respond(parts[1])
		case "host":
			return Host(parts[1])
		}
	}

	return Create()
}

// Serialize собирает путь URL обратно из маршрута
func Serialize(r Route) string {
	switch r.Kind {
	case KindRespond:
		return "/m/" + r.Slug
	case KindHost:
		return "/host/" + r.Slug
	default:
		return "/new"
	}
}
