package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with the development dataset: four
// categories, four users, five reviews and four comments. It is a
// no-op when any users already exist, so it is safe to call on every
// startup. Test helpers truncate the tables first to get a known state.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO categories (slug, description) VALUES
		('euro game', 'Abstact games that involve little luck'),
		('social deduction', 'Players attempt to uncover each other''s hidden role'),
		('dexterity', 'Games involving physical skill'),
		('children''s games', 'Games suitable for children')
	`)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (username, name, avatar_url) VALUES
		('mallionaire', 'haz', 'https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg'),
		('philippaclaire9', 'philippa', 'https://avatars2.githubusercontent.com/u/24604688?s=460&v=4'),
		('bainesface', 'sarah', 'https://avatars2.githubusercontent.com/u/24394918?s=400&v=4'),
		('dav3rid', 'dave', NULL)
	`)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	// The first review is inserted without an image URL so it picks up
	// the placeholder default.
	_, err = db.Exec(`
		INSERT INTO reviews (title, review_body, designer, review_img_url, votes, category, owner, created_at) VALUES
		('Agricola', 'Farmyard fun!', 'Uwe Rosenberg', DEFAULT, 1, 'euro game', 'mallionaire', '2021-01-18T10:00:20.514Z'),
		('Jenga', 'Fiddly fun for all the family', 'Leslie Scott', 'https://images.pexels.com/photos/4473494/pexels-photo-4473494.jpeg?w=700&h=700', 8, 'dexterity', 'philippaclaire9', '2021-01-18T10:08:05.610Z'),
		('Ultimate Werewolf', 'We couldn''t find the werewolf!', 'Akihisa Okui', 'https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700', 5, 'social deduction', 'bainesface', '2021-01-18T10:01:41.251Z'),
		('Dolor reprehenderit', 'Consequat velit occaecat voluptate do', 'Gamey McGameface', 'https://images.pexels.com/photos/278918/pexels-photo-278918.jpeg?w=700&h=700', 7, 'social deduction', 'mallionaire', '2021-01-22T11:35:50.936Z'),
		('Proident tempor et.', 'Labore occaecat sunt qui commodo anim', 'Seymour Buttz', 'https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg?w=700&h=700', 2, 'social deduction', 'mallionaire', '2021-01-07T09:06:08.077Z')
	`)
	if err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO comments (author, review_id, votes, created_at, body) VALUES
		('bainesface', 2, 16, '2017-11-22T12:43:33.389Z', 'I loved this game too!'),
		('bainesface', 2, 16, '2017-11-22T12:36:03.389Z', 'EPIC board game!'),
		('mallionaire', 3, 13, '2021-01-07T09:14:54.165Z', 'My dog loved this game too!'),
		('mallionaire', 2, 13, '2017-11-22T12:36:03.389Z', 'Now this is a story all about how, board games turned my life upside down')
	`)
	if err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	slog.Info("database seeded with development data")
	return nil
}
