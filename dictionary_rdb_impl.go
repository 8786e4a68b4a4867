package phrasal

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// DictionaryRdbImpl reads phrasal-verb definitions from a MySQL table. The
// dictionary content is maintained outside this module; this is only the
// lookup client.
type DictionaryRdbImpl struct {
	DB *sqlx.DB
}

func NewDictionaryRdbImpl(db *sqlx.DB) *DictionaryRdbImpl {
	return &DictionaryRdbImpl{
		DB: db,
	}
}

type definitionRecord struct {
	Phrase   string `db:"phrase"`
	POS      string `db:"pos"`
	Gloss    string `db:"gloss"`
	Pointers string `db:"pointers"` // comma separated related phrases
}

func (d *DictionaryRdbImpl) Lookup(phrase string, pos string) ([]Definition, error) {
	var records []definitionRecord
	if err := d.DB.Select(&records, `select phrase, pos, gloss, pointers from definitions where phrase = ?`, phrase); err != nil {
		return nil, err
	}

	definitions := make([]Definition, 0, len(records))
	for _, record := range records {
		if record.POS != "" && !strings.HasPrefix(pos, record.POS) {
			continue
		}
		definitions = append(definitions, Definition{
			POS:      record.POS,
			Gloss:    record.Gloss,
			Pointers: splitPointers(record.Pointers),
		})
	}
	if len(definitions) == 0 {
		return nil, nil
	}
	return definitions, nil
}

func splitPointers(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
