package xenon

import "testing"

func TestPoolCompactRemovesDead(t *testing.T) {
	var p Pool[Missile, *Missile]
	for i := range 5 {
		p.Add(Missile{Body: Body{Alive: true, VX: float64(i)}})
	}

	p.ForEachAlive(func(m *Missile) {
		if m.VX == 1 || m.VX == 3 {
			m.Kill()
		}
	})
	if p.Len() != 5 {
		t.Fatalf("dead entities must stay until Compact, Len() = %d", p.Len())
	}

	p.Compact()
	if p.Len() != 3 || p.Alive() != 3 {
		t.Fatalf("after Compact Len() = %d, Alive() = %d, expected 3", p.Len(), p.Alive())
	}

	var order []float64
	p.ForEachAlive(func(m *Missile) { order = append(order, m.VX) })
	want := []float64{0, 2, 4}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("survivor order = %v, expected %v", order, want)
		}
	}

	p.Compact()
	if p.Len() != 3 {
		t.Errorf("second Compact changed the pool: Len() = %d", p.Len())
	}
}

func TestPoolForEachSkipsDead(t *testing.T) {
	var p Pool[Enemy, *Enemy]
	p.Add(Enemy{Body: Body{Alive: true}, HP: 1})
	p.Add(Enemy{Body: Body{Alive: false}, HP: 2})
	p.Add(Enemy{Body: Body{Alive: true}, HP: 3})

	sum := 0
	p.ForEachAlive(func(e *Enemy) { sum += e.HP })
	if sum != 4 {
		t.Errorf("visited hp sum = %d, expected 4", sum)
	}

	found := p.FindAlive(func(e *Enemy) bool { return e.HP >= 2 })
	if found == nil || found.HP != 3 {
		t.Errorf("FindAlive should skip the dead entry, got %+v", found)
	}
}

func TestPoolKillAllAndClear(t *testing.T) {
	var p Pool[Asteroid, *Asteroid]
	p.Add(Asteroid{Body: Body{Alive: true}})
	p.Add(Asteroid{Body: Body{Alive: true}})

	p.KillAll()
	if p.Alive() != 0 {
		t.Errorf("KillAll left %d alive", p.Alive())
	}
	p.Compact()
	if p.Len() != 0 {
		t.Errorf("Compact after KillAll left %d", p.Len())
	}

	p.Add(Asteroid{Body: Body{Alive: true}})
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Clear left %d", p.Len())
	}
}
