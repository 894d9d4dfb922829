package app

import (
	"tableflip.dev/evcal/pkg/group"
)

// Groups returns the groups in display order.
func (c *Calendar) Groups() []group.Group {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]group.Group(nil), c.groups...)
}

// Group looks up a group by name.
func (c *Calendar) Group(name string) (group.Group, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.groupIndex(name); i >= 0 {
		return c.groups[i], true
	}
	return group.Group{}, false
}

// AddGroup appends a visible group. All whitespace is stripped from name;
// empty and duplicate names are rejected. An empty color means
// group.NewGroupColor.
func (c *Calendar) AddGroup(name, color string) (group.Group, error) {
	name = group.Normalize(name)
	if name == "" {
		return group.Group{}, ErrGroupNameEmpty
	}
	if color == "" {
		color = group.NewGroupColor
	}
	color, err := group.NormalizeColor(color)
	if err != nil {
		return group.Group{}, err
	}

	c.mu.Lock()
	if c.groupIndex(name) >= 0 {
		c.mu.Unlock()
		return group.Group{}, ErrGroupExists
	}
	g := group.Group{Name: name, Color: color, Visible: true}
	c.groups = append(c.groups, g)
	c.mu.Unlock()

	c.notify(Change{Kind: KindGroup, Action: ActionCreate, ID: name})
	return g, nil
}

// DeleteGroup removes a group. The default group cannot be deleted. Events
// referencing the group are handled by the orphan policy.
func (c *Calendar) DeleteGroup(name string) error {
	if name == group.Default {
		return ErrDefaultGroup
	}

	c.mu.Lock()
	i := c.groupIndex(name)
	if i < 0 {
		c.mu.Unlock()
		return ErrGroupNotFound
	}
	c.groups = append(c.groups[:i], c.groups[i+1:]...)
	policy := c.orphans
	affected := c.applyOrphanPolicyLocked(name)
	c.mu.Unlock()

	c.notify(Change{Kind: KindGroup, Action: ActionDelete, ID: name})
	switch {
	case affected == 0:
	case policy == OrphanReassign:
		c.notify(Change{Kind: KindEvent, Action: ActionUpdate})
	case policy == OrphanDelete:
		c.notify(Change{Kind: KindEvent, Action: ActionDelete})
	}
	return nil
}

// ToggleGroup flips the visibility of a group and returns the new state.
func (c *Calendar) ToggleGroup(name string) (bool, error) {
	c.mu.Lock()
	i := c.groupIndex(name)
	if i < 0 {
		c.mu.Unlock()
		return false, ErrGroupNotFound
	}
	c.groups[i].Visible = !c.groups[i].Visible
	visible := c.groups[i].Visible
	c.mu.Unlock()

	c.notify(Change{Kind: KindGroup, Action: ActionUpdate, ID: name})
	return visible, nil
}

// SetGroupColor changes the display color of a group.
func (c *Calendar) SetGroupColor(name, color string) error {
	color, err := group.NormalizeColor(color)
	if err != nil {
		return err
	}

	c.mu.Lock()
	i := c.groupIndex(name)
	if i < 0 {
		c.mu.Unlock()
		return ErrGroupNotFound
	}
	c.groups[i].Color = color
	c.mu.Unlock()

	c.notify(Change{Kind: KindGroup, Action: ActionUpdate, ID: name})
	return nil
}

// SetOrphanPolicy changes how future group deletions treat their events.
func (c *Calendar) SetOrphanPolicy(p OrphanPolicy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orphans = p
}

func (c *Calendar) applyOrphanPolicyLocked(name string) int {
	affected := 0
	switch c.orphans {
	case OrphanReassign:
		for _, e := range c.events {
			if e.GroupName == name {
				e.GroupName = group.Default
				affected++
			}
		}
	case OrphanDelete:
		kept := c.events[:0]
		for _, e := range c.events {
			if e.GroupName == name {
				affected++
				continue
			}
			kept = append(kept, e)
		}
		c.events = kept
	}
	return affected
}

func (c *Calendar) groupIndex(name string) int {
	for i, g := range c.groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}
