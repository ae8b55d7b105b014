package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"bookstore-services/internal/domains/catalog/model"
	"bookstore-services/pkg/cache"
)

const (
	bookCacheKeyFormat = "catalog:book:%d"
	bookCacheTTL       = 5 * time.Minute
)

// postgresBookRepository - raw SQL with pgxpool, read-through cache on GetByID.
type postgresBookRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresBookRepository(pool *pgxpool.Pool, cache cache.Cache) BookRepository {
	return &postgresBookRepository{
		pool:  pool,
		cache: cache,
	}
}

const bookColumns = `id, title, author, isbn, price, quantity, description, created_at, updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var book model.Book
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.Price,
		&book.Quantity,
		&book.Description,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	cacheKey := fmt.Sprintf(bookCacheKeyFormat, id)

	var cached model.Book
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		// Cache failure is non-critical, fall through to the database.
		log.Warn().Err(err).Str("key", cacheKey).Msg("Book cache read failed")
	}
	if found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)
	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, book, bookCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Book cache write failed")
	}

	return book, nil
}

func (r *postgresBookRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE isbn = $1`, bookColumns)
	book, err := scanBook(r.pool.QueryRow(ctx, query, isbn))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}
	return book, nil
}

// List returns a page of books in id order plus the total count for the filter.
func (r *postgresBookRepository) List(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error) {
	whereClause, args := buildBookWhereClause(filter)

	countQuery := `SELECT COUNT(*) FROM books` + whereClause
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM books%s ORDER BY id LIMIT $%d OFFSET $%d`,
		bookColumns, whereClause, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, filter.Limit)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, total, nil
}

func (r *postgresBookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (title, author, isbn, price, quantity, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		book.Title,
		book.Author,
		book.ISBN,
		book.Price,
		book.Quantity,
		book.Description,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// Update applies only the fields present in the patch.
func (r *postgresBookRepository) Update(ctx context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Author != nil {
		appendSet("author", *patch.Author)
	}
	if patch.ISBN != nil {
		appendSet("isbn", *patch.ISBN)
	}
	if patch.Price != nil {
		appendSet("price", *patch.Price)
	}
	if patch.Quantity != nil {
		appendSet("quantity", *patch.Quantity)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	appendSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf(
		`UPDATE books SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argIndex, bookColumns,
	)
	args = append(args, id)

	book, err := scanBook(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidate(ctx, id)
	return book, nil
}

func (r *postgresBookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresBookRepository) invalidate(ctx context.Context, id int64) {
	cacheKey := fmt.Sprintf(bookCacheKeyFormat, id)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Book cache invalidation failed")
	}
}

// buildBookWhereClause constructs the search filter shared by List and its
// count query. Search is a case-insensitive substring match across title,
// author and isbn.
func buildBookWhereClause(filter *model.BookFilter) (string, []interface{}) {
	if filter.Search == "" {
		return "", nil
	}

	pattern := "%" + filter.Search + "%"
	clause := ` WHERE (title ILIKE $1 OR author ILIKE $1 OR isbn ILIKE $1)`
	return clause, []interface{}{pattern}
}
