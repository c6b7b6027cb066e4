package services

import (
	"fmt"
	"math/rand/v2"

	"kekstagram/internal/config"
	"kekstagram/internal/models"
)

// GalleryOptions - параметры генерации галереи.
type GalleryOptions struct {
	Count        int          // Количество фотографий
	Likes        config.Range // Диапазон лайков (включительно)
	Comments     config.Range // Диапазон количества комментариев (включительно)
	AvatarCount  int          // Аватары нумеруются от 1 до AvatarCount; меньше 1 - только avatar-1
	Descriptions []string
	Messages     []string
	Names        []string
}

// OptionsFromContent собирает параметры генерации из загруженной конфигурации.
func OptionsFromContent(c config.Content) GalleryOptions {
	return GalleryOptions{
		Count:        c.Gallery.PictureCount,
		Likes:        c.Gallery.Likes,
		Comments:     c.Gallery.Comments,
		AvatarCount:  c.Gallery.AvatarCount,
		Descriptions: c.Descriptions,
		Messages:     c.Messages,
		Names:        c.Names,
	}
}

// GenerateGallery создает Count фотографий с ID от 1 до Count.
// У каждой фотографии случайное число комментариев с ID от 1.
// Все случайные значения выбираются независимо, повторы из наборов текстов допустимы.
func GenerateGallery(rng *rand.Rand, opts GalleryOptions) []models.Picture {
	pictures := make([]models.Picture, 0, max(opts.Count, 0))
	for id := 1; id <= opts.Count; id++ {
		pictures = append(pictures, createPicture(rng, id, opts))
	}
	return pictures
}

func createPicture(rng *rand.Rand, id int, opts GalleryOptions) models.Picture {
	picture := models.Picture{
		ID:          id,
		URL:         fmt.Sprintf("photos/%d.jpg", id),
		Description: randomElement(rng, opts.Descriptions),
		Likes:       randomInteger(rng, opts.Likes.Min, opts.Likes.Max),
	}

	count := randomInteger(rng, opts.Comments.Min, opts.Comments.Max)
	picture.Comments = make([]models.Comment, 0, count)
	for commentID := 1; commentID <= count; commentID++ {
		picture.Comments = append(picture.Comments, createComment(rng, commentID, opts))
	}
	return picture
}

func createComment(rng *rand.Rand, id int, opts GalleryOptions) models.Comment {
	return models.Comment{
		ID:      id,
		Avatar:  fmt.Sprintf("img/avatar-%d.svg", randomInteger(rng, 1, max(opts.AvatarCount, 1))),
		Message: randomElement(rng, opts.Messages),
		Name:    randomElement(rng, opts.Names),
	}
}

// randomInteger возвращает случайное целое из [a, b]; границы можно передавать в любом порядке.
func randomInteger(rng *rand.Rand, a, b int) int {
	lower, upper := min(a, b), max(a, b)
	return lower + rng.IntN(upper-lower+1)
}

// randomElement возвращает случайный элемент набора или "" для пустого набора.
func randomElement(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.IntN(len(pool))]
}
