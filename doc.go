/*
Package sitepv computes the position and velocity of an observing site
relative to the center of mass of the Earth.

The position of an observatory matters to any astrometric reduction of
minor planet observations.  Topocentric parallax moves a near Earth
object by many arc seconds against the stars, and the rotation of the
Earth carries the observer along at up to half a kilometer per second,
enough to matter in motion vectors fit across a night.

Results are Cartesian vectors in the mean ecliptic and equinox of
J2000, positions in AU, velocities in AU per solar day.

Sites

A site can be given by geodetic coordinates, east longitude and
latitude in degrees with height in meters above the WGS84 ellipsoid,
or by the parallax constants observatories report to the Minor Planet
Center.  The obscode.dat file the MPC distributes loads through the
mpcformat package and feeds SiteFromMPC directly.

Time

Epochs are modified Julian dates in UTC.  The rotation angle of the
Earth needs UT1, and the difference between the two scales, while under
a second, moves a site by several hundred meters at the equator.  The
conversion is delegated to a Resolver, ordinarily an eop.Series loaded
from a published Earth orientation dataset.  eop.Offset serves when a
fixed shift is good enough.

The model

The site vector is built on the reference ellipsoid, spun to the true
equator and equinox of date with Greenwich apparent sidereal time, and
carried to J2000 with the IAU 1976 precession and IAU 1980 nutation
series.  Velocity is the rigid rotation term ω×r in the same frame.
Polar motion and tidal deformation are left out, keeping results good
to the order of ten meters at the surface.

Public domain.
*/
package sitepv
