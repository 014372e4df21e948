package db

const deviceColumns = `
	id,
	employee_id,
	device_uuid,
	device_type,
	name,
	os,
	browser,
	last_ip,
	last_latitude,
	last_longitude,
	is_approved,
	is_active,
	trust_level,
	risk_score,
	approval_reason,
	registered_at,
	last_used_at`

const getActiveDevice = `
SELECT` + deviceColumns + `
FROM devices
WHERE device_uuid = $1 AND employee_id = $2 AND is_active = TRUE
`

const getConflictingDevice = `
SELECT d.id, d.employee_id, e.name AS employee_name
FROM devices d
JOIN employees e ON e.id = d.employee_id
WHERE d.device_uuid = $1
	AND d.employee_id <> $2
	AND d.is_active = TRUE
	AND e.is_active = TRUE
ORDER BY d.last_used_at DESC
LIMIT 1
`

const touchDevice = `
UPDATE devices
SET last_used_at = NOW(),
	last_ip = $2,
	last_latitude = COALESCE($3, last_latitude),
	last_longitude = COALESCE($4, last_longitude)
WHERE id = $1
`

const createDevice = `
INSERT INTO devices (
	employee_id,
	device_uuid,
	device_type,
	name,
	os,
	browser,
	last_ip,
	last_latitude,
	last_longitude,
	is_approved,
	trust_level,
	risk_score,
	approval_reason
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (device_uuid, employee_id) WHERE is_active DO NOTHING
RETURNING id
`

const countActiveDevices = `
SELECT COUNT(*)
FROM devices
WHERE employee_id = $1 AND is_active = TRUE
`

const listRecentLocations = `
SELECT last_latitude AS latitude, last_longitude AS longitude
FROM devices
WHERE employee_id = $1
	AND last_latitude IS NOT NULL
	AND last_longitude IS NOT NULL
ORDER BY last_used_at DESC
LIMIT $2
`

const evictLeastRecentDevice = `
UPDATE devices
SET is_active = FALSE
WHERE id = (
	SELECT id
	FROM devices
	WHERE employee_id = $1 AND is_active = TRUE AND id <> $2
	ORDER BY last_used_at ASC
	LIMIT 1
)
RETURNING id
`

const listDevices = `
SELECT` + deviceColumns + `
FROM devices
WHERE employee_id = $1
ORDER BY last_used_at DESC
`

const deactivateDevice = `
UPDATE devices
SET is_active = FALSE
WHERE id = $1 AND employee_id = $2 AND is_active = TRUE
`
