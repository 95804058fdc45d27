// Package catalog holds the immutable game reference data: exercise
// templates, dungeons, weekly bosses, special missions, shadows, punishment
// templates, shop items and achievements.
//
// The tables are built once by Default and shared by every request without
// locking. Entries are referenced by stable string ids:
//
//	c := catalog.Default()
//	if boss, ok := c.Boss("boss_igris"); ok {
//	    fmt.Println(boss.Shadow) // shadow_igris
//	}
package catalog
