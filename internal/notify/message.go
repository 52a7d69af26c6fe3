package notify

import "fmt"

// Caption builds the Markdown announcement sent alongside the poster.
func Caption(m Movie) string {
	return fmt.Sprintf(`**%s**

¡Nueva película ya disponible en el servidor!

__%s__

🎬 **Género:** %s
📅 **Año:** %s
⭐️ **Valoración en IMDB:** %s
🔗 [IMDB](https://www.imdb.com/title/%s/)
`, m.Title, m.Plot, m.Genre, m.Year, m.ImdbRating, m.ImdbID)
}
