package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// storedBooking строка бронирования, вещь и арендатор подтягиваются при чтении
type storedBooking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   domain.BookingStatus
}

// Store хранилище всех сущностей в памяти процесса
// Используется в тестах и при database.driver = "memory"
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users    map[int64]domain.User
	items    map[int64]domain.Item
	bookings map[int64]storedBooking
	comments map[int64]domain.Comment
	requests map[int64]domain.ItemRequest

	seq map[string]int64
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		items:    make(map[int64]domain.Item),
		bookings: make(map[int64]storedBooking),
		comments: make(map[int64]domain.Comment),
		requests: make(map[int64]domain.ItemRequest),
		seq:      make(map[string]int64),
	}
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

func (s *Store) Items() *ItemRepository {
	return &ItemRepository{store: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{store: s}
}

func (s *Store) Requests() *ItemRequestRepository {
	return &ItemRequestRepository{store: s}
}

// TxManager менеджер транзакций для хранилища в памяти
func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

type txKey struct{}

// TxManager сериализует транзакционные блоки одним мьютексом
// Откат изменений не поддерживается, поэтому запись должна быть последним шагом блока
type TxManager struct {
	store *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, true))
}
