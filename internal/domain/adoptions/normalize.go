package adoptions

// Normalize pliega un documento guardado (con nombres de campo de
// distintas eras del intake) a la forma canónica. Es total: nunca falla,
// y sobre un registro ya canónico es la identidad.
func Normalize(raw RawRecord, defaultFilename string) Record {
	rec := Record{
		ID:        raw.ID,
		Name:      raw.Name,
		Type:      raw.Type,
		Age:       raw.Age,
		Status:    raw.Status,
		UpdatedAt: raw.UpdatedAt,
	}

	rec.Area = firstNonEmpty(raw.Area, raw.Location)
	rec.Justification = firstNonEmpty(raw.Justification, raw.Description)

	rec.Email = raw.Email
	rec.Phone = raw.Phone
	if raw.Owner != nil {
		rec.Email = firstNonEmpty(rec.Email, raw.Owner.Email)
		rec.Phone = firstNonEmpty(rec.Phone, raw.Owner.Phone)
	}

	rec.Filename = firstNonEmpty(raw.Filename, defaultFilename)

	return rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
