package db

const createMonitoringLog = `
INSERT INTO device_monitoring_logs (employee_id, device_uuid, risk_score, risk_level, flags, action)
VALUES ($1, $2, $3, $4, $5, $6)
`

const createSecurityIncident = `
INSERT INTO security_incidents (
	employee_id,
	type,
	severity,
	risk_score,
	device_uuid_prefix,
	ip,
	flags,
	archive_key
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const getManagerContact = `
SELECT
	e.id AS employee_id,
	e.name AS employee_name,
	m.name AS manager_name,
	m.email AS manager_email
FROM employees e
JOIN employees m ON m.id = e.manager_id
WHERE e.id = $1 AND m.is_active = TRUE
`
