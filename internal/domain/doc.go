// Package domain models NASA FIRMS active-fire detection data.
//
// # Data Source
//
// Detections come from the NASA FIRMS (Fire Information for Resource
// Management System) active-fire feed at
// https://firms.modaps.eosdis.nasa.gov/data/active_fire/, which publishes
// rolling 24-hour global CSV files per satellite instrument: MODIS
// (Terra/Aqua), VIIRS on Suomi NPP, and VIIRS on NOAA-20. The job fetches
// one of these files, filters it to today's acquisitions, and snapshots it.
//
// # CSV Conventions
//
// Column sets differ between instruments, so nothing here assumes a fixed
// schema. Columns the job understands when present:
//
//	acq_date   acquisition date, "YYYY-MM-DD"
//	acq_time   acquisition time of day, HHMM in 24-hour satellite overpass
//	           time (UTC), e.g. "1510" = 15:10
//	latitude   WGS-84 latitude of the detection centroid
//	longitude  WGS-84 longitude of the detection centroid
//	confidence detection confidence, 0-100 for MODIS; VIIRS files may use
//	           the letters l/n/h instead, which numeric analyses skip
//	frp        fire radiative power in megawatts, the intensity measure
//	           used to order the snapshot (largest fires first)
//
// All remaining columns (brightness temperatures, scan/track pixel sizes,
// satellite and version identifiers) pass through untouched.
//
// # Ordering
//
// Rows keep their feed order everywhere except the final snapshot, which is
// stable-sorted descending by frp when that column exists. Rows whose frp
// does not parse as a number sort after all numeric rows.
package domain
