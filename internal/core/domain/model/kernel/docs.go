// Package kernel provides the domain primitives shared by the parcel matching model.
//
// The package includes:
//   - UUID: identifier value object backed by github.com/google/uuid
//   - Location: validated latitude/longitude pair with haversine distance
//   - Contact: optional phone and email of a profile
//
// UUID and Location reject their zero values on Validate.
package kernel
