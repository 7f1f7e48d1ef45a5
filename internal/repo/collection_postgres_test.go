package repo

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

func TestPostgresGetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"data"}).
		AddRow([]byte(`{"id":"eq-1","name":"Excavator","rentalRate":450}`)).
		AddRow([]byte(`{"id":"eq-2","name":"Scissor Lift","rentalRate":120.5}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM records WHERE collection = $1 ORDER BY position`)).
		WithArgs(models.CollectionEquipment).
		WillReturnRows(rows)

	repo := NewPostgresCollectionRepository(db)
	got, err := repo.GetAll(models.CollectionEquipment)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID() != "eq-1" || got[1].String("rentalRate") != "120.5" {
		t.Errorf("unexpected records: %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGetAllUnknownCollection(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	_, err = NewPostgresCollectionRepository(db).GetAll("widgets")
	if !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM records WHERE collection = $1 AND id = $2`)).
		WithArgs(models.CollectionOrders, "missing").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err = NewPostgresCollectionRepository(db).GetByID(models.CollectionOrders, "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	insert := regexp.QuoteMeta(`INSERT INTO records (collection, id, data) VALUES ($1, $2, $3) ON CONFLICT (collection, id) DO NOTHING`)
	mock.ExpectExec(insert).
		WithArgs(models.CollectionCustomers, "cu-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insert).
		WithArgs(models.CollectionCustomers, "cu-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresCollectionRepository(db)
	created, err := repo.Create(models.CollectionCustomers, models.Record{"id": "cu-1", "name": "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.String("name") != "Acme" {
		t.Errorf("expected created record to keep its fields, got %v", created)
	}

	_, err = repo.Create(models.CollectionCustomers, models.Record{"id": "cu-1"})
	if !errors.Is(err, ErrDuplicatedID) {
		t.Fatalf("expected ErrDuplicatedID, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCollections(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"collection", "data"}).
		AddRow("orders", []byte(`{"id":"o1","status":"PENDING"}`)).
		AddRow("orders", []byte(`{"id":"o2","status":"COMPLETED"}`)).
		AddRow("rentals", []byte(`{"id":"r1","status":"active"}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT collection, data FROM records ORDER BY collection, position`)).
		WillReturnRows(rows)

	got, err := NewPostgresCollectionRepository(db).Collections()
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if len(got.Get(models.CollectionOrders)) != 2 || len(got.Get(models.CollectionRentals)) != 1 {
		t.Errorf("unexpected grouping: %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
