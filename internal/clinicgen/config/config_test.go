package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := Get()
	if cfg.Version != "0.1" {
		t.Errorf("default Version = %v, want 0.1", cfg.Version)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("default Driver = %v, want postgres", cfg.Database.Driver)
	}
	if cfg.Generate.Patients != 500 {
		t.Errorf("default Patients = %v, want 500", cfg.Generate.Patients)
	}
	if cfg.Generate.Therapists != 6 {
		t.Errorf("default Therapists = %v, want 6", cfg.Generate.Therapists)
	}
	if cfg.Generate.Appointments != 3000 {
		t.Errorf("default Appointments = %v, want 3000", cfg.Generate.Appointments)
	}
	if cfg.Generate.Tasks != 200 {
		t.Errorf("default Tasks = %v, want 200", cfg.Generate.Tasks)
	}
	if cfg.Generate.PastDays != 180 || cfg.Generate.FutureDays != 30 {
		t.Errorf("default window = %v/%v, want 180/30", cfg.Generate.PastDays, cfg.Generate.FutureDays)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	v := viper.New()
	v.Set("version", "0.2")
	v.Set("database.driver", "mysql")
	v.Set("database.host", "db.internal")
	v.Set("database.port", 3306)
	v.Set("database.user", "clinic")
	v.Set("database.password", "secret")
	v.Set("database.name", "clinic_demo")
	v.Set("generate.seed", 42)
	v.Set("generate.patients", 50)
	v.Set("generate.therapists", 3)
	v.Set("generate.appointments", 300)
	v.Set("generate.tasks", 20)
	v.Set("generate.weights_file", "./weights.yaml")
	v.Set("output.sql_file", "./clinic.sql")
	v.Set("logging.level", "debug")

	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := Get()
	if cfg.Version != "0.2" {
		t.Errorf("Version = %v, want 0.2", cfg.Version)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Driver = %v, want mysql", cfg.Database.Driver)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Host = %v, want db.internal", cfg.Database.Host)
	}
	if cfg.Database.Port != 3306 {
		t.Errorf("Port = %v, want 3306", cfg.Database.Port)
	}
	if cfg.Database.User != "clinic" || cfg.Database.Password != "secret" {
		t.Errorf("credentials = %v/%v, want clinic/secret", cfg.Database.User, cfg.Database.Password)
	}
	if cfg.Database.Name != "clinic_demo" {
		t.Errorf("Name = %v, want clinic_demo", cfg.Database.Name)
	}
	if cfg.Generate.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Generate.Seed)
	}
	if cfg.Generate.Patients != 50 || cfg.Generate.Therapists != 3 {
		t.Errorf("counts = %v/%v, want 50/3", cfg.Generate.Patients, cfg.Generate.Therapists)
	}
	if cfg.Generate.WeightsFile != "./weights.yaml" {
		t.Errorf("WeightsFile = %v, want ./weights.yaml", cfg.Generate.WeightsFile)
	}
	if cfg.Output.SQLFile != "./clinic.sql" {
		t.Errorf("SQLFile = %v, want ./clinic.sql", cfg.Output.SQLFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
}
