/*
Package gtfs parses the GTFS static stops table (stops.txt).

Only the stop registry columns matter here: stop_id (0), stop_name (2),
stop_lat (4) and stop_lon (5). Lines are split on a bare comma with no
quoting support; a stop_name containing a comma will misparse. That matches
the upstream data this pipeline was written for and is a documented
limitation, not a bug to fix.
*/
package gtfs
