package database

import (
	// Стандартные библиотеки
	"context"      // Для отмены запросов вместе с HTTP-запросом
	"database/sql" // Основной пакет для работы с SQL базами данных
	"fmt"          // Для форматирования строк и ошибок
	"strings"      // Для поиска подстроки в ошибках SQLite

	// Внутренние пакеты
	"kekstagram/internal/logger"   // Структурное логирование
	"kekstagram/internal/models"   // Структуры Picture и Comment
	"kekstagram/internal/services" // Случайное имя для базы в памяти

	// Драйвер SQLite. Пустой импорт регистрирует драйвер "sqlite" в database/sql.
	_ "modernc.org/sqlite"
)

// Store хранит сгенерированную галерею в базе SQLite в памяти.
// Данные живут только пока открыт Store: на диск ничего не пишется.
type Store struct {
	db   *sql.DB
	name string
}

// Open создает отдельную базу в памяти и таблицы галереи.
// Каждый вызов получает собственную базу со случайным именем.
func Open() (*Store, error) {
	name, err := services.GenerateSecureToken(12)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации имени базы: %w", err)
	}

	// mode=memory - база существует только в памяти процесса,
	// foreign_keys(1) - включает проверку внешних ключей (комментарии -> фотографии).
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка при открытии базы в памяти: %w", err)
	}

	// База в памяти исчезает вместе с последним соединением,
	// поэтому держим ровно одно соединение и никогда его не пересоздаем.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка при проверке соединения с базой в памяти: %w", err)
	}

	s := &Store{db: db, name: name}
	if err = s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка при создании таблиц: %w", err)
	}
	logger.Debug("База галереи в памяти готова", "name", name)
	return s, nil
}

// Close закрывает соединение; данные при этом теряются.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables создает таблицы 'pictures' и 'comments'.
func (s *Store) createTables() error {
	picturesTableSQL := `
	CREATE TABLE IF NOT EXISTS pictures (
		id INTEGER NOT NULL PRIMARY KEY,  -- Номер фотографии (1..N), задается генератором
		url TEXT NOT NULL,
		description TEXT NOT NULL,
		likes INTEGER NOT NULL
	);`
	if _, err := s.db.Exec(picturesTableSQL); err != nil {
		return fmt.Errorf("ошибка при создании таблицы pictures: %w", err)
	}

	// Номер комментария уникален только внутри фотографии.
	commentsTableSQL := `
	CREATE TABLE IF NOT EXISTS comments (
		picture_id INTEGER NOT NULL,
		id INTEGER NOT NULL,
		avatar TEXT NOT NULL,
		message TEXT NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (picture_id, id),
		FOREIGN KEY (picture_id) REFERENCES pictures(id) ON DELETE CASCADE
	);`
	if _, err := s.db.Exec(commentsTableSQL); err != nil {
		return fmt.Errorf("ошибка при создании таблицы comments: %w", err)
	}
	return nil
}

// Seed сохраняет фотографии вместе с комментариями в одной транзакции.
func (s *Store) Seed(ctx context.Context, pictures []models.Picture) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции Seed: %w", err)
	}
	// Если Commit() успешен, Rollback() ничего не делает.
	defer tx.Rollback()

	pictureStmt, err := tx.PrepareContext(ctx, "INSERT INTO pictures (id, url, description, likes) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса вставки фотографии: %w", err)
	}
	defer pictureStmt.Close()

	commentStmt, err := tx.PrepareContext(ctx, "INSERT INTO comments (picture_id, id, avatar, message, name) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса вставки комментария: %w", err)
	}
	defer commentStmt.Close()

	comments := 0
	for _, p := range pictures {
		if _, err := pictureStmt.ExecContext(ctx, p.ID, p.URL, p.Description, p.Likes); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return fmt.Errorf("фотография с ID %d уже существует", p.ID)
			}
			return fmt.Errorf("ошибка вставки фотографии %d: %w", p.ID, err)
		}
		for _, c := range p.Comments {
			if _, err := commentStmt.ExecContext(ctx, p.ID, c.ID, c.Avatar, c.Message, c.Name); err != nil {
				if strings.Contains(err.Error(), "UNIQUE constraint failed") {
					return fmt.Errorf("комментарий %d к фотографии %d уже существует", c.ID, p.ID)
				}
				return fmt.Errorf("ошибка вставки комментария %d к фотографии %d: %w", c.ID, p.ID, err)
			}
			comments++
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции Seed: %w", err)
	}
	logger.Info("Галерея загружена в базу", "pictures", len(pictures), "comments", comments)
	return nil
}

// ListPictures возвращает все фотографии с комментариями, упорядоченные по ID.
func (s *Store) ListPictures(ctx context.Context) ([]models.Picture, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, url, description, likes FROM pictures ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса ListPictures: %w", err)
	}
	defer rows.Close()

	pictures := []models.Picture{}
	index := map[int]int{} // ID фотографии -> позиция в pictures
	for rows.Next() {
		p := models.Picture{Comments: []models.Comment{}}
		if err := rows.Scan(&p.ID, &p.URL, &p.Description, &p.Likes); err != nil {
			return nil, fmt.Errorf("ошибка сканирования фотографии: %w", err)
		}
		index[p.ID] = len(pictures)
		pictures = append(pictures, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения фотографий: %w", err)
	}

	commentRows, err := s.db.QueryContext(ctx,
		"SELECT picture_id, id, avatar, message, name FROM comments ORDER BY picture_id, id")
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса комментариев: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var pictureID int
		var c models.Comment
		if err := commentRows.Scan(&pictureID, &c.ID, &c.Avatar, &c.Message, &c.Name); err != nil {
			return nil, fmt.Errorf("ошибка сканирования комментария: %w", err)
		}
		if i, ok := index[pictureID]; ok {
			pictures[i].Comments = append(pictures[i].Comments, c)
		}
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения комментариев: %w", err)
	}
	return pictures, nil
}

// GetPicture ищет фотографию по ID вместе с комментариями.
// Возвращает nil, nil, если фотографии нет - это не ошибка БД.
func (s *Store) GetPicture(ctx context.Context, id int) (*models.Picture, error) {
	p := &models.Picture{Comments: []models.Comment{}}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, url, description, likes FROM pictures WHERE id = ?", id,
	).Scan(&p.ID, &p.URL, &p.Description, &p.Likes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка сканирования GetPicture для ID %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, avatar, message, name FROM comments WHERE picture_id = ? ORDER BY id", id)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса комментариев для ID %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Avatar, &c.Message, &c.Name); err != nil {
			return nil, fmt.Errorf("ошибка сканирования комментария для ID %d: %w", id, err)
		}
		p.Comments = append(p.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения комментариев для ID %d: %w", id, err)
	}
	return p, nil
}

// CountPictures возвращает количество фотографий в галерее.
func (s *Store) CountPictures(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pictures").Scan(&n); err != nil {
		return 0, fmt.Errorf("ошибка подсчета фотографий: %w", err)
	}
	return n, nil
}
