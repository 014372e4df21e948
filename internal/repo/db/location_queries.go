package db

const getLocation = `
SELECT id, name, address, latitude, longitude, radius, is_active, created_at
FROM locations
WHERE id = $1
`

const createLocation = `
INSERT INTO locations (name, address, latitude, longitude, radius)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

const createAttendance = `
INSERT INTO attendances (employee_id, type, device_id, location_id, latitude, longitude, distance)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at
`
