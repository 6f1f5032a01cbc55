package repositories

import (
	"context"
	"database/sql"

	intdb "hrportal/internal/db"
	"hrportal/internal/domain/models"
)

// ReferenceRepository reads the lookup tables behind the filter dropdowns.
type ReferenceRepository struct {
	DB *sql.DB
}

func (r ReferenceRepository) ReferenceData(ctx context.Context) (models.ReferenceData, error) {
	ref := models.ReferenceData{
		Countries:       []models.Country{},
		Departments:     []models.Department{},
		EmploymentTypes: []models.EmploymentType{},
	}
	if r.DB == nil {
		return ref, nil
	}
	var err error
	if intdb.HasTable(ctx, r.DB, "countries") {
		ref.Countries, err = queryAll(ctx, r.DB, "countries",
			`SELECT COALESCE(code,''), COALESCE(name,'') FROM countries ORDER BY name`,
			func(rows *sql.Rows) (models.Country, error) {
				var c models.Country
				return c, rows.Scan(&c.Code, &c.Name)
			})
		if err != nil {
			return ref, err
		}
	}
	if intdb.HasTable(ctx, r.DB, "departments") {
		ref.Departments, err = queryAll(ctx, r.DB, "departments",
			`SELECT CAST(id AS CHAR), COALESCE(name,'') FROM departments ORDER BY name`,
			func(rows *sql.Rows) (models.Department, error) {
				var d models.Department
				return d, rows.Scan(&d.ID, &d.Name)
			})
		if err != nil {
			return ref, err
		}
	}
	if intdb.HasTable(ctx, r.DB, "employment_types") {
		ref.EmploymentTypes, err = queryAll(ctx, r.DB, "employment_types",
			`SELECT CAST(id AS CHAR), COALESCE(name,'') FROM employment_types ORDER BY name`,
			func(rows *sql.Rows) (models.EmploymentType, error) {
				var e models.EmploymentType
				return e, rows.Scan(&e.ID, &e.Name)
			})
		if err != nil {
			return ref, err
		}
	}
	return ref, nil
}
