package layout

// PipelineOwner tracks whether the render tree needs layout or paint.
//
// Render objects without a parent schedule themselves here; nodes with a
// parent propagate the request upwards until they reach the root.
type PipelineOwner struct {
	dirtyLayout map[RenderObject]struct{}
	dirtyPaint  map[RenderObject]struct{}
	needsLayout bool
	needsPaint  bool
	// OnNeedsFrame, if set, is called whenever a layout or paint is scheduled.
	OnNeedsFrame func()
}

// ScheduleLayout marks a root render object as needing layout.
// Layout always implies a repaint.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayout == nil {
		p.dirtyLayout = make(map[RenderObject]struct{})
	}
	p.dirtyLayout[object] = struct{}{}
	p.needsLayout = true
	p.needsPaint = true
	p.notify()
}

// SchedulePaint marks a root render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaint[object]; exists && p.needsPaint {
		return
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
	p.notify()
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot lays out root with constraints if anything requested layout.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	root.Layout(constraints, false)
	p.dirtyLayout = nil
	p.needsLayout = false
}

// FlushPaint reports whether a repaint was pending and clears the request.
func (p *PipelineOwner) FlushPaint() bool {
	pending := p.needsPaint
	p.dirtyPaint = nil
	p.needsPaint = false
	return pending
}

func (p *PipelineOwner) notify() {
	if p.OnNeedsFrame != nil {
		p.OnNeedsFrame()
	}
}
