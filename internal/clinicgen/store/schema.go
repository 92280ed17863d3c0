package store

// DDL for the clinic schema. Two dialects are supported, matching the two
// drivers the tool ships with.

func ddlStatements(driver string) []string {
	if driver == "postgres" {
		return []string{
			`DROP TABLE IF EXISTS reception_tasks, cancellations, appointments, treatments, therapists, patients CASCADE;`,
			`CREATE TABLE patients (
    patient_id BIGINT PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(40) NOT NULL,
    date_of_birth DATE NOT NULL,
    gender TEXT CHECK (gender IN ('M','F','Other')),
    address TEXT,
    insurance_type TEXT CHECK (insurance_type IN ('Public','Private','Self-pay')),
    primary_condition TEXT,
    registration_date DATE NOT NULL,
    emergency_contact TEXT,
    emergency_phone VARCHAR(40),
    notes TEXT,
    created_at TIMESTAMPTZ DEFAULT now()
);`,
			`CREATE TABLE therapists (
    therapist_id BIGINT PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(40) NOT NULL,
    specialization TEXT NOT NULL,
    license_number VARCHAR(20) UNIQUE NOT NULL,
    hire_date DATE NOT NULL,
    hourly_rate NUMERIC(8,2),
    max_patients_per_day INT NOT NULL CHECK (max_patients_per_day > 0),
    working_days TEXT NOT NULL,
    start_time VARCHAR(5) NOT NULL,
    end_time VARCHAR(5) NOT NULL,
    is_active BOOLEAN DEFAULT true
);`,
			`CREATE TABLE treatments (
    treatment_id BIGINT PRIMARY KEY,
    treatment_name TEXT NOT NULL,
    treatment_code VARCHAR(20) UNIQUE NOT NULL,
    duration_minutes INT NOT NULL,
    base_price NUMERIC(8,2) NOT NULL,
    description TEXT,
    requires_equipment BOOLEAN DEFAULT false,
    category TEXT CHECK (category IN ('Manual Therapy','Exercise Therapy','Electrotherapy','Hydrotherapy','Assessment')),
    is_active BOOLEAN DEFAULT true
);`,
			`CREATE TABLE appointments (
    appointment_id BIGINT PRIMARY KEY,
    patient_id BIGINT NOT NULL REFERENCES patients(patient_id),
    therapist_id BIGINT NOT NULL REFERENCES therapists(therapist_id),
    treatment_id BIGINT NOT NULL REFERENCES treatments(treatment_id),
    appointment_date DATE NOT NULL,
    appointment_time VARCHAR(5) NOT NULL,
    duration_minutes INT NOT NULL,
    status TEXT CHECK (status IN ('Scheduled','Completed','Cancelled','No-show','In-progress')) DEFAULT 'Scheduled',
    booking_date TIMESTAMPTZ NOT NULL,
    booking_method TEXT CHECK (booking_method IN ('Online','Phone','Walk-in','Referral')) DEFAULT 'Phone',
    price NUMERIC(8,2) NOT NULL,
    insurance_covered BOOLEAN DEFAULT false,
    copay_amount NUMERIC(8,2) DEFAULT 0,
    notes TEXT,
    reminder_sent BOOLEAN DEFAULT false,
    check_in_time TIMESTAMPTZ,
    treatment_start_time TIMESTAMPTZ,
    treatment_end_time TIMESTAMPTZ
);`,
			`CREATE TABLE cancellations (
    cancellation_id BIGSERIAL PRIMARY KEY,
    appointment_id BIGINT UNIQUE NOT NULL REFERENCES appointments(appointment_id),
    cancelled_by TEXT CHECK (cancelled_by IN ('Patient','Clinic','Therapist','System')),
    cancellation_date TIMESTAMPTZ NOT NULL,
    hours_before_appointment INT,
    reason_category TEXT CHECK (reason_category IN ('Personal','Medical','Transportation','Work','Weather','Other')),
    reason_detail TEXT,
    refund_issued BOOLEAN DEFAULT false,
    refund_amount NUMERIC(8,2) DEFAULT 0,
    rescheduled BOOLEAN DEFAULT false
);`,
			`CREATE TABLE reception_tasks (
    task_id BIGSERIAL PRIMARY KEY,
    task_type TEXT CHECK (task_type IN ('Appointment Confirmation','Insurance Verification','Payment Processing','Patient Check-in','Reminder Call','Follow-up')),
    patient_id BIGINT REFERENCES patients(patient_id),
    appointment_id BIGINT REFERENCES appointments(appointment_id),
    priority INT CHECK (priority BETWEEN 1 AND 5) DEFAULT 3,
    status TEXT CHECK (status IN ('Pending','In Progress','Completed','Cancelled')) DEFAULT 'Pending',
    assigned_to TEXT,
    estimated_duration_minutes INT,
    actual_duration_minutes INT,
    due_date TIMESTAMPTZ,
    completed_date TIMESTAMPTZ,
    notes TEXT,
    created_at TIMESTAMPTZ NOT NULL
);`,
			`CREATE INDEX idx_appointments_status ON appointments(status);`,
			`CREATE INDEX idx_appointments_date ON appointments(appointment_date);`,
			`CREATE INDEX idx_appointments_therapist ON appointments(therapist_id, appointment_date);`,
			`CREATE INDEX idx_tasks_status ON reception_tasks(status);`,
		}
	}

	// MySQL (InnoDB)
	return []string{
		`DROP TABLE IF EXISTS reception_tasks;`,
		`DROP TABLE IF EXISTS cancellations;`,
		`DROP TABLE IF EXISTS appointments;`,
		`DROP TABLE IF EXISTS treatments;`,
		`DROP TABLE IF EXISTS therapists;`,
		`DROP TABLE IF EXISTS patients;`,
		`CREATE TABLE patients (
    patient_id BIGINT PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(40) NOT NULL,
    date_of_birth DATE NOT NULL,
    gender ENUM('M','F','Other'),
    address TEXT,
    insurance_type ENUM('Public','Private','Self-pay'),
    primary_condition VARCHAR(100),
    registration_date DATE NOT NULL,
    emergency_contact VARCHAR(200),
    emergency_phone VARCHAR(40),
    notes TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		`CREATE TABLE therapists (
    therapist_id BIGINT PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(40) NOT NULL,
    specialization VARCHAR(100) NOT NULL,
    license_number VARCHAR(20) UNIQUE NOT NULL,
    hire_date DATE NOT NULL,
    hourly_rate DECIMAL(8,2),
    max_patients_per_day INT NOT NULL,
    working_days VARCHAR(40) NOT NULL,
    start_time VARCHAR(5) NOT NULL,
    end_time VARCHAR(5) NOT NULL,
    is_active BOOLEAN DEFAULT true
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		`CREATE TABLE treatments (
    treatment_id BIGINT PRIMARY KEY,
    treatment_name VARCHAR(100) NOT NULL,
    treatment_code VARCHAR(20) UNIQUE NOT NULL,
    duration_minutes INT NOT NULL,
    base_price DECIMAL(8,2) NOT NULL,
    description TEXT,
    requires_equipment BOOLEAN DEFAULT false,
    category ENUM('Manual Therapy','Exercise Therapy','Electrotherapy','Hydrotherapy','Assessment'),
    is_active BOOLEAN DEFAULT true
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		`CREATE TABLE appointments (
    appointment_id BIGINT PRIMARY KEY,
    patient_id BIGINT NOT NULL,
    therapist_id BIGINT NOT NULL,
    treatment_id BIGINT NOT NULL,
    appointment_date DATE NOT NULL,
    appointment_time VARCHAR(5) NOT NULL,
    duration_minutes INT NOT NULL,
    status ENUM('Scheduled','Completed','Cancelled','No-show','In-progress') DEFAULT 'Scheduled',
    booking_date DATETIME NOT NULL,
    booking_method ENUM('Online','Phone','Walk-in','Referral') DEFAULT 'Phone',
    price DECIMAL(8,2) NOT NULL,
    insurance_covered BOOLEAN DEFAULT false,
    copay_amount DECIMAL(8,2) DEFAULT 0,
    notes TEXT,
    reminder_sent BOOLEAN DEFAULT false,
    check_in_time DATETIME,
    treatment_start_time DATETIME,
    treatment_end_time DATETIME,
    FOREIGN KEY (patient_id) REFERENCES patients(patient_id),
    FOREIGN KEY (therapist_id) REFERENCES therapists(therapist_id),
    FOREIGN KEY (treatment_id) REFERENCES treatments(treatment_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		`CREATE TABLE cancellations (
    cancellation_id BIGINT AUTO_INCREMENT PRIMARY KEY,
    appointment_id BIGINT UNIQUE NOT NULL,
    cancelled_by ENUM('Patient','Clinic','Therapist','System'),
    cancellation_date DATETIME NOT NULL,
    hours_before_appointment INT,
    reason_category ENUM('Personal','Medical','Transportation','Work','Weather','Other'),
    reason_detail VARCHAR(200),
    refund_issued BOOLEAN DEFAULT false,
    refund_amount DECIMAL(8,2) DEFAULT 0,
    rescheduled BOOLEAN DEFAULT false,
    FOREIGN KEY (appointment_id) REFERENCES appointments(appointment_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		`CREATE TABLE reception_tasks (
    task_id BIGINT AUTO_INCREMENT PRIMARY KEY,
    task_type ENUM('Appointment Confirmation','Insurance Verification','Payment Processing','Patient Check-in','Reminder Call','Follow-up'),
    patient_id BIGINT,
    appointment_id BIGINT,
    priority INT DEFAULT 3,
    status ENUM('Pending','In Progress','Completed','Cancelled') DEFAULT 'Pending',
    assigned_to VARCHAR(50),
    estimated_duration_minutes INT,
    actual_duration_minutes INT,
    due_date DATETIME,
    completed_date DATETIME,
    notes TEXT,
    created_at DATETIME NOT NULL,
    FOREIGN KEY (patient_id) REFERENCES patients(patient_id),
    FOREIGN KEY (appointment_id) REFERENCES appointments(appointment_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		`CREATE INDEX idx_appointments_status ON appointments(status);`,
		`CREATE INDEX idx_appointments_date ON appointments(appointment_date);`,
		`CREATE INDEX idx_appointments_therapist ON appointments(therapist_id, appointment_date);`,
		`CREATE INDEX idx_tasks_status ON reception_tasks(status);`,
	}
}
