package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cineplex/internal/data/entity"
	"cineplex/internal/data/repository"
	"cineplex/pkg/mailer"
	"cineplex/pkg/utils"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. Each fake mirrors
// the contract documented on its interface, including the token
// single-use flip and the atomic rating aggregate.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == phone {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for id, s := range f.sessions {
		if s.Token.String() == token {
			s.RevokedAt = &now
			f.sessions[id] = s
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for id, s := range f.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
			f.sessions[id] = s
		}
	}
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]entity.TokenConfirm
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uuid.UUID]entity.TokenConfirm)}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *entity.TokenConfirm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token.ID] = *token
	return nil
}

func (f *fakeTokenRepo) FindByTokenAndType(_ context.Context, token string, tokenType entity.TokenType) (*entity.TokenConfirm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tc := range f.tokens {
		if tc.Token == token && tc.Type == tokenType {
			out := tc
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenRepo) Confirm(_ context.Context, token string, tokenType entity.TokenType) (*entity.TokenConfirm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, tc := range f.tokens {
		if tc.Token != token || tc.Type != tokenType {
			continue
		}
		if tc.ConfirmedAt != nil {
			return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrAlreadyConfirmed)
		}
		now := time.Now()
		if now.After(tc.ExpiresAt) {
			return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrExpired)
		}

		stored := tc
		stored.ConfirmedAt = &now
		if stored.Type == entity.TokenTypePasswordReset {
			stored.Type = entity.TokenTypePasswordChange
		}
		f.tokens[id] = stored

		out := stored
		out.Type = tokenType
		return &out, nil
	}

	return nil, fmt.Errorf("%s token: %w", tokenType, utils.ErrInvalidToken)
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]entity.Movie)}
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.movies[id]; ok {
		out := m
		return &out, nil
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindBySlugAndPublished(_ context.Context, slug string) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.movies {
		if m.Slug == slug && m.Published {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAllPublishedOrderByRating(_ context.Context) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Movie
	for _, m := range f.movies {
		if m.Published {
			movie := m
			out = append(out, &movie)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

func (f *fakeMovieRepo) FindAllOrderByReleaseDate(_ context.Context) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Movie
	for _, m := range f.movies {
		movie := m
		out = append(out, &movie)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReleaseDate.After(out[j].ReleaseDate) })
	return out, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.movies {
		if m.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMovieRepo) ApplyRating(_ context.Context, movieID uuid.UUID, rating int) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	movie, ok := f.movies[movieID]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", movieID.String(), utils.ErrNotFound)
	}

	movie.RatingCount++
	movie.TotalRatings += int64(rating)
	movie.Rating = utils.RoundHalfUp1(float64(movie.TotalRatings) / float64(movie.RatingCount))
	movie.UpdatedAt = time.Now()
	f.movies[movieID] = movie

	out := movie
	return &out, nil
}

type fakeCinemaRepo struct {
	mu      sync.Mutex
	cinemas map[uuid.UUID]entity.Cinema
}

func newFakeCinemaRepo() *fakeCinemaRepo {
	return &fakeCinemaRepo{cinemas: make(map[uuid.UUID]entity.Cinema)}
}

func (f *fakeCinemaRepo) Create(_ context.Context, cinema *entity.Cinema) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cinemas[cinema.ID] = *cinema
	return nil
}

func (f *fakeCinemaRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cinema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.cinemas[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (f *fakeCinemaRepo) FindAll(_ context.Context) ([]*entity.Cinema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Cinema
	for _, c := range f.cinemas {
		cinema := c
		out = append(out, &cinema)
	}
	return out, nil
}

func (f *fakeCinemaRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cinemas {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type fakeAuditoriumRepo struct {
	mu          sync.Mutex
	auditoriums map[uuid.UUID]entity.Auditorium
}

func newFakeAuditoriumRepo() *fakeAuditoriumRepo {
	return &fakeAuditoriumRepo{auditoriums: make(map[uuid.UUID]entity.Auditorium)}
}

func (f *fakeAuditoriumRepo) Create(_ context.Context, auditorium *entity.Auditorium) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auditoriums[auditorium.ID] = *auditorium
	return nil
}

func (f *fakeAuditoriumRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Auditorium, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.auditoriums[id]; ok {
		out := a
		return &out, nil
	}
	return nil, nil
}

func (f *fakeAuditoriumRepo) FindByCinemaID(_ context.Context, cinemaID uuid.UUID) ([]*entity.Auditorium, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Auditorium
	for _, a := range f.auditoriums {
		if a.CinemaID == cinemaID {
			auditorium := a
			out = append(out, &auditorium)
		}
	}
	return out, nil
}

func (f *fakeAuditoriumRepo) UpdateTotalSeats(_ context.Context, id uuid.UUID, totalSeats int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.auditoriums[id]; ok {
		a.TotalSeats = totalSeats
		f.auditoriums[id] = a
	}
	return nil
}

type fakeSeatRepo struct {
	mu    sync.Mutex
	seats map[uuid.UUID]entity.Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID]entity.Seat)}
}

func (f *fakeSeatRepo) CreateBatch(_ context.Context, seats []*entity.Seat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, seat := range seats {
		f.seats[seat.ID] = *seat
	}
	return nil
}

func (f *fakeSeatRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.seats[id]; ok {
		out := s
		return &out, nil
	}
	return nil, nil
}

func (f *fakeSeatRepo) FindByAuditoriumID(_ context.Context, auditoriumID uuid.UUID) ([]*entity.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Seat
	for _, s := range f.seats {
		if s.AuditoriumID == auditoriumID {
			seat := s
			out = append(out, &seat)
		}
	}
	return out, nil
}

type fakeShowtimeRepo struct {
	mu        sync.Mutex
	showtimes map[uuid.UUID]entity.Showtime
}

func newFakeShowtimeRepo() *fakeShowtimeRepo {
	return &fakeShowtimeRepo{showtimes: make(map[uuid.UUID]entity.Showtime)}
}

func (f *fakeShowtimeRepo) Create(_ context.Context, showtime *entity.Showtime) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showtimes[showtime.ID] = *showtime
	return nil
}

func (f *fakeShowtimeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Showtime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.showtimes[id]; ok {
		out := s
		return &out, nil
	}
	return nil, nil
}

func (f *fakeShowtimeRepo) FindByMovieAndDate(_ context.Context, movieID uuid.UUID, date time.Time) ([]*entity.Showtime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Showtime
	for _, s := range f.showtimes {
		if s.MovieID == movieID && sameDay(s.ScreeningDate, date) {
			showtime := s
			out = append(out, &showtime)
		}
	}
	return out, nil
}

func (f *fakeShowtimeRepo) FindByAuditoriumAndDate(_ context.Context, auditoriumID uuid.UUID, date time.Time) ([]*entity.Showtime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Showtime
	for _, s := range f.showtimes {
		if s.AuditoriumID == auditoriumID && sameDay(s.ScreeningDate, date) {
			showtime := s
			out = append(out, &showtime)
		}
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

type fakePriceRepo struct {
	mu     sync.Mutex
	prices map[entity.PriceKey]entity.BaseTicketPrice
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{prices: make(map[entity.PriceKey]entity.BaseTicketPrice)}
}

func (f *fakePriceRepo) FindByKey(_ context.Context, key entity.PriceKey) (*entity.BaseTicketPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.prices[key]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (f *fakePriceRepo) Upsert(_ context.Context, price *entity.BaseTicketPrice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := entity.PriceKey{
		CinemaID:          price.CinemaID,
		AuditoriumType:    price.AuditoriumType,
		DayType:           price.DayType,
		ScreeningTimeType: price.ScreeningTimeType,
		GraphicsType:      price.GraphicsType,
		SeatType:          price.SeatType,
	}
	f.prices[key] = *price
	return nil
}

func (f *fakePriceRepo) FindByCinemaID(_ context.Context, cinemaID uuid.UUID) ([]*entity.BaseTicketPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BaseTicketPrice
	for _, p := range f.prices {
		if p.CinemaID == cinemaID {
			price := p
			out = append(out, &price)
		}
	}
	return out, nil
}

type fakeBillRepo struct {
	mu    sync.Mutex
	bills map[uuid.UUID]entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]entity.Bill)}
}

func (f *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bills[bill.ID] = *bill
	return nil
}

func (f *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bills[id]; ok {
		out := b
		return &out, nil
	}
	return nil, nil
}

func (f *fakeBillRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Bill
	for _, b := range f.bills {
		if b.UserID == userID {
			bill := b
			all = append(all, &bill)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeBillRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bills {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bills[bill.ID] = *bill
	return nil
}

type fakeBillSeatRepo struct {
	mu    sync.Mutex
	lines map[uuid.UUID]entity.BillSeat
	bills *fakeBillRepo
}

func newFakeBillSeatRepo(bills *fakeBillRepo) *fakeBillSeatRepo {
	return &fakeBillSeatRepo{lines: make(map[uuid.UUID]entity.BillSeat), bills: bills}
}

func (f *fakeBillSeatRepo) CreateBatch(_ context.Context, seats []*entity.BillSeat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, seat := range seats {
		f.lines[seat.ID] = *seat
	}
	return nil
}

func (f *fakeBillSeatRepo) FindByBillID(_ context.Context, billID uuid.UUID) ([]*entity.BillSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BillSeat
	for _, l := range f.lines {
		if l.BillID == billID {
			line := l
			out = append(out, &line)
		}
	}
	return out, nil
}

func (f *fakeBillSeatRepo) ExistsForShowtime(ctx context.Context, showtimeID, seatID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.lines {
		if l.SeatID != seatID {
			continue
		}
		bill, err := f.bills.FindByID(ctx, l.BillID)
		if err != nil || bill == nil {
			continue
		}
		if bill.ShowtimeID == showtimeID && bill.Status != entity.BillStatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

type fakeBillComboRepo struct {
	mu    sync.Mutex
	lines map[uuid.UUID]entity.BillCombo
}

func newFakeBillComboRepo() *fakeBillComboRepo {
	return &fakeBillComboRepo{lines: make(map[uuid.UUID]entity.BillCombo)}
}

func (f *fakeBillComboRepo) Create(_ context.Context, combo *entity.BillCombo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines[combo.ID] = *combo
	return nil
}

func (f *fakeBillComboRepo) FindByBillID(_ context.Context, billID uuid.UUID) ([]*entity.BillCombo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BillCombo
	for _, l := range f.lines {
		if l.BillID == billID {
			line := l
			out = append(out, &line)
		}
	}
	return out, nil
}

type fakeComboRepo struct {
	mu     sync.Mutex
	combos map[uuid.UUID]entity.Combo
}

func newFakeComboRepo() *fakeComboRepo {
	return &fakeComboRepo{combos: make(map[uuid.UUID]entity.Combo)}
}

func (f *fakeComboRepo) Create(_ context.Context, combo *entity.Combo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.combos[combo.ID] = *combo
	return nil
}

func (f *fakeComboRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Combo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.combos[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (f *fakeComboRepo) FindAll(_ context.Context) ([]*entity.Combo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Combo
	for _, c := range f.combos {
		combo := c
		out = append(out, &combo)
	}
	return out, nil
}

func (f *fakeComboRepo) Update(_ context.Context, combo *entity.Combo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.combos[combo.ID] = *combo
	return nil
}

type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[uuid.UUID]entity.Coupon
	usages  map[uuid.UUID]entity.CouponUser
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{
		coupons: make(map[uuid.UUID]entity.Coupon),
		usages:  make(map[uuid.UUID]entity.CouponUser),
	}
}

func (f *fakeCouponRepo) Create(_ context.Context, coupon *entity.Coupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coupons[coupon.ID] = *coupon
	return nil
}

func (f *fakeCouponRepo) FindByCode(_ context.Context, code string) (*entity.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.coupons {
		if c.Code == code {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) HasUsed(_ context.Context, couponID, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.usages {
		if u.CouponID == couponID && u.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCouponRepo) CreateUsage(_ context.Context, usage *entity.CouponUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usages[usage.ID] = *usage
	return nil
}

type fakeMailer struct {
	mu            sync.Mutex
	registrations []mailer.MailData
	resets        []mailer.MailData
}

func (m *fakeMailer) SendRegistrationConfirm(data mailer.MailData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations = append(m.registrations, data)
}

func (m *fakeMailer) SendPasswordReset(data mailer.MailData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, data)
}

func newTestRepo() *repository.Repository {
	bills := newFakeBillRepo()
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Session:    newFakeSessionRepo(),
		Token:      newFakeTokenRepo(),
		Movie:      newFakeMovieRepo(),
		Cinema:     newFakeCinemaRepo(),
		Auditorium: newFakeAuditoriumRepo(),
		Seat:       newFakeSeatRepo(),
		Showtime:   newFakeShowtimeRepo(),
		Price:      newFakePriceRepo(),
		Bill:       bills,
		BillSeat:   newFakeBillSeatRepo(bills),
		BillCombo:  newFakeBillComboRepo(),
		Combo:      newFakeComboRepo(),
		Coupon:     newFakeCouponRepo(),
	}
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:    "cineplex-test",
			Port:    "8080",
			BaseURL: "http://localhost:8080",
		},
		Token: utils.TokenConfig{
			RegistrationTTLHours:  24,
			PasswordResetTTLHours: 1,
		},
		Session: utils.SessionConfig{
			ExpiryHours: 24,
		},
	}
}
